// Package dialect translates the surface syntaxes of the Brainfuck family
// into canonical vm programs, and back.
//
// Translation is total: symbols a dialect does not recognize are skipped,
// and the remaining opcodes keep their source order and position.
package dialect
