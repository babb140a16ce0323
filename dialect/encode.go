package dialect

import (
	"strings"

	"github.com/ezrec/ookbf/vm"
)

// OOK_PAIRS_PER_LINE is the number of Ook! commands written per line by Encode.
const OOK_PAIRS_PER_LINE = 8

var ookWords = [3]string{"Ook.", "Ook?", "Ook!"}

// Encode writes a program as source text in dialect d. The mapping only
// applies to SHORT_OOK, and replaces each mark with its mapped character.
func Encode(d Dialect, prog *vm.Program, m Mapping) (text string, err error) {
	for pc, op := range prog.Codes() {
		if !op.Valid() {
			err = &ErrOpcode{Pc: pc, Op: op}
			return
		}
	}

	var sb strings.Builder

	switch d {
	case BRAINFUCK:
		sb.WriteString(prog.String())
	case OOK:
		for pc, op := range prog.Codes() {
			if pc > 0 {
				if pc%OOK_PAIRS_PER_LINE == 0 {
					sb.WriteByte('\n')
				} else {
					sb.WriteByte(' ')
				}
			}
			pair := opPairs[op]
			sb.WriteString(ookWords[pair[0]])
			sb.WriteByte(' ')
			sb.WriteString(ookWords[pair[1]])
		}
	case SHORT_OOK:
		err = m.Validate()
		if err != nil {
			return
		}
		for _, op := range prog.Codes() {
			pair := opPairs[op]
			sb.WriteRune(m[pair[0]])
			sb.WriteRune(m[pair[1]])
		}
	default:
		err = ErrDialectUnknown(d.String())
		return
	}

	text = sb.String()
	return
}
