package config

import (
	"errors"

	"github.com/ezrec/ookbf/translate"
)

var f = translate.From

var (
	ErrTapeSize   = errors.New(f("max data size must be positive"))
	ErrOutputSize = errors.New(f("max output size must not be negative"))
	ErrStepLimit  = errors.New(f("step limit must not be negative"))
)

type ErrExpression string

func (err ErrExpression) Error() string {
	return f("'%v' is not an integer expression", string(err))
}

// ErrValue indicates which configuration key held a bad value.
type ErrValue struct {
	Key string
	Err error
}

func (err *ErrValue) Error() string {
	return f("%v: %v", err.Key, err.Err)
}

func (err *ErrValue) Unwrap() error {
	return err.Err
}
