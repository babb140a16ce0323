package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzTranslate(f *testing.F) {
	f.Add(helloWorld)
	f.Add("Ook. Ook? Ook! Ook.")
	f.Add("..?!!?")
	f.Add("\xff+\n-")

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		for _, d := range []Dialect{BRAINFUCK, OOK, SHORT_OOK} {
			prog, err := Translate(d, text, DefaultMapping)
			assert.NoError(err)
			assert.Equal(len(prog.Opcodes), len(prog.Positions))
			for pc, op := range prog.Codes() {
				assert.True(op.Valid(), "pc %d", pc)
				assert.True(prog.Position(pc).Valid(), "pc %d", pc)
			}

			// Every dialect re-encodes to the same program.
			for _, to := range []Dialect{BRAINFUCK, OOK, SHORT_OOK} {
				encoded, err := Encode(to, prog, DefaultMapping)
				assert.NoError(err)
				again, err := Translate(to, encoded, DefaultMapping)
				assert.NoError(err)
				assert.Equal(prog.Opcodes, again.Opcodes, "%v -> %v", d, to)
			}
		}
	})
}
