// Package io provides the byte channels and program sources used around the
// tape machine: the input tape read by the ',' opcode, and the loader that
// turns a command-line argument into program text.
package io

// Channel is a sequential byte input channel.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// ReadByte reads the next byte from the channel.
	ReadByte() (value byte, err error)
}
