package emulator

import (
	"errors"

	"github.com/ezrec/ookbf/translate"
	"github.com/ezrec/ookbf/vm"
)

var f = translate.From

var (
	ErrNoDialect = errors.New(f("no dialect given, and none can be inferred"))
	ErrNoProgram = errors.New(f("no program loaded"))
)

// ErrRuntime indicates the source location of a program error.
type ErrRuntime struct {
	Position vm.Position
	Err      error
}

func (err *ErrRuntime) Error() string {
	if !err.Position.Valid() {
		return err.Err.Error()
	}
	return f("%v: %v", err.Position.String(), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
