package vm

// Opcode is a canonical tape machine instruction.
type Opcode byte

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_RIGHT  = Opcode(1) // >
	OP_LEFT   = Opcode(2) // <
	OP_INC    = Opcode(3) // +
	OP_DEC    = Opcode(4) // -
	OP_OUTPUT = Opcode(5) // .
	OP_INPUT  = Opcode(6) // ,
	OP_LOOP   = Opcode(7) // [
	OP_END    = Opcode(8) // ]
)

// Valid returns true if the opcode is one of the eight canonical opcodes.
func (op Opcode) Valid() bool {
	return op >= OP_RIGHT && op <= OP_END
}

// Bracket returns true for OP_LOOP and OP_END.
func (op Opcode) Bracket() bool {
	return op == OP_LOOP || op == OP_END
}
