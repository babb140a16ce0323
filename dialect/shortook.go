package dialect

import (
	"iter"
	"strings"

	"github.com/ezrec/ookbf/internal"
	"github.com/ezrec/ookbf/vm"
)

// Mapping substitutes source characters onto the '.', '?' and '!' marks.
type Mapping [3]rune

// DefaultMapping leaves the marks unchanged.
var DefaultMapping = Mapping{'.', '?', '!'}

// ParseMapping parses a three character mapping, in '.', '?', '!' order.
func ParseMapping(text string) (m Mapping, err error) {
	chars := []rune(text)
	if len(chars) != len(m) {
		err = ErrMappingLength(text)
		return
	}

	copy(m[:], chars)
	err = m.Validate()
	return
}

// Validate checks that the mapping characters are distinct.
func (m Mapping) Validate() (err error) {
	if m[0] == m[1] || m[0] == m[2] || m[1] == m[2] {
		err = ErrMappingRepeat(m.String())
	}
	return
}

// String returns the mapping as its three characters.
func (m Mapping) String() string {
	return string(m[:])
}

// Apply substitutes mapped characters in text. Other characters are unchanged.
func (m Mapping) Apply(text string) string {
	if m == DefaultMapping {
		return text
	}

	return strings.Map(func(r rune) rune {
		for n, from := range m {
			if r == from {
				return rune(symbolMarks[n])
			}
		}
		return r
	}, text)
}

// ShortOok translates the compressed Ook! syntax, where only the marks
// '.', '?' and '!' are significant and are read in pairs.
func ShortOok(text string) *vm.Program {
	var tokens iter.Seq[token] = func(yield func(tk token) bool) {
		for pos, r := range runes(text) {
			sym := symbolOf(r)
			if sym == symNone {
				continue
			}
			if !yield(token{pos: pos, sym: sym}) {
				return
			}
		}
	}

	var b builder
	for first, second := range internal.Pairs(tokens) {
		op, ok := decode(first.sym, second.sym)
		if ok {
			b.add(op, first.pos)
		}
	}
	return b.program()
}

// ShortOokMapped applies a mapping to text, then translates it as ShortOok.
func ShortOokMapped(text string, m Mapping) *vm.Program {
	return ShortOok(m.Apply(text))
}
