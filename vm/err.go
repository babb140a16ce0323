package vm

import (
	"errors"
	"fmt"

	"github.com/ezrec/ookbf/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrTapeSize   = errors.New(f("tape size must be positive"))
	ErrOutputSize = errors.New(f("output size must not be negative"))

	// Execution errors
	ErrTapeLeft       = errors.New(f("data cursor moved left of the tape"))
	ErrTapeRight      = errors.New(f("data cursor moved right of the tape"))
	ErrUnbalancedLoop = errors.New(f("unbalanced loop bracket"))
	ErrInputExhausted = errors.New(f("no input available"))
	ErrOutputLimit    = errors.New(f("output limit exceeded"))
	ErrStepLimit      = errors.New(f("step limit exceeded"))
)

// ErrUnbalanced lists the loop brackets without a partner.
type ErrUnbalanced struct {
	Open  []int // Program indices of unmatched '['.
	Close []int // Program indices of unmatched ']'.
}

func (err *ErrUnbalanced) Error() string {
	return f("unbalanced loops: unmatched '[' at %v, unmatched ']' at %v",
		fmt.Sprint(err.Open), fmt.Sprint(err.Close))
}

func (err *ErrUnbalanced) Unwrap() error {
	return ErrUnbalancedLoop
}

// ErrTapeBounds indicates the data cursor would leave the tape.
type ErrTapeBounds struct {
	Cursor int // Data cursor before the move.
	Size   int // Tape length.
	Err    error
}

func (err *ErrTapeBounds) Error() string {
	return f("%v (cursor %v, tape size %v)", err.Err, fmt.Sprint(err.Cursor), fmt.Sprint(err.Size))
}

func (err *ErrTapeBounds) Unwrap() error {
	return err.Err
}

// ErrFault indicates the opcode that faulted during execution.
type ErrFault struct {
	Pc  int
	Op  Opcode
	Err error
}

func (err *ErrFault) Error() string {
	return f("pc %v '%v': %v", fmt.Sprint(err.Pc), err.Op.String(), err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
