// Package vm implements the tape machine shared by the Brainfuck family of
// dialects.
//
// A Program is a sequence of eight canonical opcodes. Before execution the
// loop brackets are paired into a JumpTable so that entering or repeating a
// loop is a single jump. The Engine owns a fixed-length tape of byte cells,
// a data cursor starting at the middle of the tape, a program cursor, and an
// output buffer that is returned as a string when the program halts.
package vm
