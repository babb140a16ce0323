package vm

import (
	"strings"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

// parse builds a program from canonical Brainfuck symbols, ignoring others.
func parse(text string) *Program {
	var ops []Opcode
	for _, c := range text {
		n := strings.IndexRune("><+-.,[]", c)
		if n >= 0 {
			ops = append(ops, Opcode(n+1))
		}
	}
	return NewProgram(ops, nil)
}

// parseAt is parse, also recording the line and column of each opcode.
func parseAt(text string) *Program {
	var ops []Opcode
	var positions []Position
	pos := Position{Line: 1, Column: 1}
	for _, c := range text {
		n := strings.IndexRune("><+-.,[]", c)
		if n >= 0 {
			ops = append(ops, Opcode(n+1))
			positions = append(positions, pos)
		}
		pos.Column++
		if c == '\n' {
			pos = Position{Line: pos.Line + 1, Column: 1}
		}
	}
	return NewProgram(ops, positions)
}
