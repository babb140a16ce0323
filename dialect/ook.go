package dialect

import (
	"iter"

	"github.com/ezrec/ookbf/internal"
	"github.com/ezrec/ookbf/vm"
)

// symbol is one of the three Ook! punctuation marks.
type symbol int

const (
	symNone     = symbol(-1)
	symDot      = symbol(0) // .
	symQuestion = symbol(1) // ?
	symBang     = symbol(2) // !
)

// pairOps decodes a (first, second) symbol pair. Zero entries are not opcodes.
var pairOps = [3][3]vm.Opcode{
	// Rows are the first symbol, columns the second.
	symDot:      {vm.OP_INC, vm.OP_RIGHT, vm.OP_INPUT},
	symQuestion: {vm.OP_LEFT, 0, vm.OP_END},
	symBang:     {vm.OP_OUTPUT, vm.OP_LOOP, vm.OP_DEC},
}

// opPairs encodes an opcode as its symbol pair.
var opPairs = [...][2]symbol{
	vm.OP_RIGHT:  {symDot, symQuestion},
	vm.OP_LEFT:   {symQuestion, symDot},
	vm.OP_INC:    {symDot, symDot},
	vm.OP_DEC:    {symBang, symBang},
	vm.OP_OUTPUT: {symBang, symDot},
	vm.OP_INPUT:  {symDot, symBang},
	vm.OP_LOOP:   {symBang, symQuestion},
	vm.OP_END:    {symQuestion, symBang},
}

const symbolMarks = ".?!"

// symbolOf returns the symbol of a punctuation mark.
func symbolOf(r rune) symbol {
	switch r {
	case '.':
		return symDot
	case '?':
		return symQuestion
	case '!':
		return symBang
	}
	return symNone
}

// decode returns the opcode of a symbol pair.
func decode(first, second symbol) (op vm.Opcode, ok bool) {
	if first == symNone || second == symNone {
		return
	}
	op = pairOps[first][second]
	ok = op.Valid()
	return
}

// token is a symbol and the source position it was read from.
type token struct {
	pos vm.Position
	sym symbol
}

// ookWord returns the symbol of an Ook! word.
func ookWord(text string) symbol {
	if len(text) != 4 || text[:3] != "Ook" {
		return symNone
	}
	return symbolOf(rune(text[3]))
}

// Ook translates Ook! source. Whitespace separated words are read in pairs,
// and pairs that are not an Ook! command are skipped. A trailing unpaired
// word is dropped.
func Ook(text string) *vm.Program {
	var tokens iter.Seq[token] = func(yield func(tk token) bool) {
		for w := range words(text) {
			if !yield(token{pos: w.pos, sym: ookWord(w.text)}) {
				return
			}
		}
	}

	var b builder
	for first, second := range internal.Pairs(tokens) {
		op, ok := decode(first.sym, second.sym)
		if ok {
			b.add(op, first.pos)
		}
	}
	return b.program()
}
