package io

import (
	"errors"
	"io"
)

// Tape provides sequential byte input from an io.Reader.
// A Tape without an Input is always empty.
type Tape struct {
	Input io.Reader

	readCount int
}

var _ Channel = (*Tape)(nil)

// Rewind resets the read counter. The underlying reader cannot be rewound.
func (tc *Tape) Rewind() {
	tc.readCount = 0
}

// Count returns the number of bytes read since the last Rewind.
func (tc *Tape) Count() int {
	return tc.readCount
}

// ReadByte reads exactly one byte from the input stream.
func (tc *Tape) ReadByte() (value byte, err error) {
	if tc.Input == nil {
		err = ErrTapeEmpty
		return
	}

	var one [1]byte
	_, err = io.ReadFull(tc.Input, one[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrTapeEmpty
		}
		return
	}

	value = one[0]
	tc.readCount++
	return
}
