package vm

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Position is a 1-based line and column in program source text.
type Position struct {
	Line   int
	Column int
}

// String returns the position as "line:column".
func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

// Valid returns true if the position refers to source text.
func (pos Position) Valid() bool {
	return pos.Line > 0
}

// Program is an immutable sequence of canonical opcodes.
type Program struct {
	Opcodes   []Opcode   // Canonical opcodes, in execution order.
	Positions []Position // Source position of each opcode, if known.
}

// NewProgram creates a program from opcodes and their optional source positions.
// Positions are dropped unless there is exactly one per opcode.
func NewProgram(ops []Opcode, positions []Position) (prog *Program) {
	prog = &Program{
		Opcodes: slices.Clone(ops),
	}
	if len(positions) == len(ops) {
		prog.Positions = slices.Clone(positions)
	}

	return
}

// Len returns the number of opcodes in the program.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Opcodes)
}

// At returns the opcode at pc.
func (prog *Program) At(pc int) Opcode {
	return prog.Opcodes[pc]
}

// Position returns the source position of the opcode at pc.
func (prog *Program) Position(pc int) (pos Position) {
	if prog == nil || pc < 0 || pc >= len(prog.Positions) {
		return
	}

	return prog.Positions[pc]
}

// Codes iterates over the program counter and opcode of each instruction.
func (prog *Program) Codes() iter.Seq2[int, Opcode] {
	return func(yield func(pc int, op Opcode) bool) {
		if prog == nil {
			return
		}
		for pc, op := range prog.Opcodes {
			if !yield(pc, op) {
				return
			}
		}
	}
}

// String returns the program as canonical Brainfuck text.
func (prog *Program) String() string {
	var sb strings.Builder
	for _, op := range prog.Codes() {
		sb.WriteString(op.String())
	}
	return sb.String()
}
