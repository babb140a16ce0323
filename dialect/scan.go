package dialect

import (
	"iter"
	"unicode"

	"github.com/ezrec/ookbf/vm"
)

// runes yields each rune of text with its 1-based line and column.
func runes(text string) iter.Seq2[vm.Position, rune] {
	return func(yield func(pos vm.Position, r rune) bool) {
		pos := vm.Position{Line: 1, Column: 1}
		for _, r := range text {
			if !yield(pos, r) {
				return
			}
			if r == '\n' {
				pos.Line++
				pos.Column = 1
			} else {
				pos.Column++
			}
		}
	}
}

// word is a whitespace-delimited token and the position of its first rune.
type word struct {
	pos  vm.Position
	text string
}

// words splits text on Unicode whitespace.
func words(text string) iter.Seq[word] {
	return func(yield func(w word) bool) {
		pos := vm.Position{Line: 1, Column: 1}
		var start vm.Position
		begin := -1
		for offset, r := range text {
			if unicode.IsSpace(r) {
				if begin >= 0 && !yield(word{pos: start, text: text[begin:offset]}) {
					return
				}
				begin = -1
			} else if begin < 0 {
				begin = offset
				start = pos
			}
			if r == '\n' {
				pos.Line++
				pos.Column = 1
			} else {
				pos.Column++
			}
		}
		if begin >= 0 {
			yield(word{pos: start, text: text[begin:]})
		}
	}
}

// builder accumulates opcodes and their positions.
type builder struct {
	ops       []vm.Opcode
	positions []vm.Position
}

func (b *builder) add(op vm.Opcode, pos vm.Position) {
	b.ops = append(b.ops, op)
	b.positions = append(b.positions, pos)
}

func (b *builder) program() *vm.Program {
	return &vm.Program{
		Opcodes:   b.ops,
		Positions: b.positions,
	}
}
