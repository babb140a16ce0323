package dialect

import (
	"path"
	"strings"

	rio "github.com/ezrec/ookbf/io"
	"github.com/ezrec/ookbf/vm"
)

// Dialect is a surface syntax of the Brainfuck family.
type Dialect int

//go:generate go tool stringer -linecomment -type=Dialect
const (
	BRAINFUCK = Dialect(0) // brainfuck
	OOK       = Dialect(1) // ook
	SHORT_OOK = Dialect(2) // short-ook
)

// dialectNames maps command names and aliases to dialects.
var dialectNames = map[string]Dialect{
	"brainfuck": BRAINFUCK,
	"bf":        BRAINFUCK,
	"b":         BRAINFUCK,
	"ook":       OOK,
	"o":         OOK,
	"short-ook": SHORT_OOK,
	"shortook":  SHORT_OOK,
	"so":        SHORT_OOK,
}

// dialectSuffixes maps file name extensions to dialects.
var dialectSuffixes = map[string]Dialect{
	".b":    BRAINFUCK,
	".bf":   BRAINFUCK,
	".ook":  OOK,
	".sook": SHORT_OOK,
	".so":   SHORT_OOK,
}

// ParseDialect returns the dialect for a name or alias.
func ParseDialect(name string) (d Dialect, err error) {
	d, ok := dialectNames[strings.ToLower(name)]
	if !ok {
		err = ErrDialectUnknown(name)
	}
	return
}

// ForPath infers the dialect from a file name extension, ignoring any
// compression suffix.
func ForPath(name string) (d Dialect, err error) {
	ext := strings.ToLower(path.Ext(rio.StripCompression(name)))
	d, ok := dialectSuffixes[ext]
	if !ok {
		err = ErrDialectUnknown(name)
	}
	return
}

// Translate converts source text in dialect d into a program. The mapping
// only applies to SHORT_OOK.
func Translate(d Dialect, text string, m Mapping) (prog *vm.Program, err error) {
	switch d {
	case BRAINFUCK:
		prog = Brainfuck(text)
	case OOK:
		prog = Ook(text)
	case SHORT_OOK:
		prog = ShortOokMapped(text, m)
	default:
		err = ErrDialectUnknown(d.String())
	}
	return
}
