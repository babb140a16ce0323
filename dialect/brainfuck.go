package dialect

import (
	"github.com/ezrec/ookbf/vm"
)

// brainfuckOps maps ASCII symbols to opcodes; zero entries are not opcodes.
var brainfuckOps = [128]vm.Opcode{
	'>': vm.OP_RIGHT,
	'<': vm.OP_LEFT,
	'+': vm.OP_INC,
	'-': vm.OP_DEC,
	'.': vm.OP_OUTPUT,
	',': vm.OP_INPUT,
	'[': vm.OP_LOOP,
	']': vm.OP_END,
}

// Brainfuck translates Brainfuck source. Every character other than the
// eight command symbols is a comment.
func Brainfuck(text string) *vm.Program {
	var b builder
	for pos, r := range runes(text) {
		if int(r) >= len(brainfuckOps) {
			continue
		}
		op := brainfuckOps[r]
		if op.Valid() {
			b.add(op, pos)
		}
	}
	return b.program()
}
