package dialect

import (
	"fmt"

	"github.com/ezrec/ookbf/translate"
	"github.com/ezrec/ookbf/vm"
)

var f = translate.From

type ErrMappingLength string

func (err ErrMappingLength) Error() string {
	return f("mapping '%v' must be exactly 3 characters", string(err))
}

type ErrMappingRepeat string

func (err ErrMappingRepeat) Error() string {
	return f("mapping '%v' must not repeat a character", string(err))
}

type ErrDialectUnknown string

func (err ErrDialectUnknown) Error() string {
	return f("unknown dialect '%v'", string(err))
}

// ErrOpcode indicates a program holds a value that is not a canonical opcode.
type ErrOpcode struct {
	Pc int
	Op vm.Opcode
}

func (err *ErrOpcode) Error() string {
	return f("pc %v: %v is not an opcode", fmt.Sprint(err.Pc), err.Op.String())
}
