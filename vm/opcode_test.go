package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op      Opcode
		text    string
		valid   bool
		bracket bool
	}){
		{OP_RIGHT, ">", true, false},
		{OP_LEFT, "<", true, false},
		{OP_INC, "+", true, false},
		{OP_DEC, "-", true, false},
		{OP_OUTPUT, ".", true, false},
		{OP_INPUT, ",", true, false},
		{OP_LOOP, "[", true, true},
		{OP_END, "]", true, true},
		{Opcode(0), "Opcode(0)", false, false},
		{Opcode(9), "Opcode(9)", false, false},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.op.String())
		assert.Equal(entry.valid, entry.op.Valid(), entry.text)
		assert.Equal(entry.bracket, entry.op.Bracket(), entry.text)
	}
}
