package io

import (
	"errors"

	"github.com/ezrec/ookbf/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrTapeEmpty = errors.New(f("tape empty"))

	// Source errors
	ErrSourceEmpty = errors.New(f("no program source given"))
)
