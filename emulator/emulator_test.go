package emulator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/ookbf/config"
	"github.com/ezrec/ookbf/dialect"
	rio "github.com/ezrec/ookbf/io"
	"github.com/ezrec/ookbf/vm"
)

const helloWorld = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."

func newEmulator(t *testing.T, d string) *Emulator {
	cfg := config.Default()
	cfg.Dialect = d
	emu, err := NewEmulator(cfg)
	assert.NoError(t, err)
	if err != nil {
		t.Fatal(err)
	}
	return emu
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.MaxDataSize = 0
	_, err := NewEmulator(cfg)
	assert.ErrorIs(err, config.ErrTapeSize)

	emu := newEmulator(t, "")
	assert.Nil(emu.Engine)
	assert.Equal(vm.Position{}, emu.Position())

	_, err = emu.Tick()
	assert.ErrorIs(err, ErrNoProgram)
}

func TestEmulator_Dialects(t *testing.T) {
	assert := assert.New(t)

	bf := dialect.Brainfuck(helloWorld)
	ook, err := dialect.Encode(dialect.OOK, bf, dialect.DefaultMapping)
	assert.NoError(err)
	short, err := dialect.Encode(dialect.SHORT_OOK, bf, dialect.DefaultMapping)
	assert.NoError(err)

	table := [](struct {
		dialect string
		text    string
	}){
		{"brainfuck", helloWorld},
		{"ook", ook},
		{"short-ook", short},
	}

	for _, entry := range table {
		emu := newEmulator(t, entry.dialect)
		out, err := emu.Run(context.Background(), entry.text)
		assert.NoError(err, entry.dialect)
		assert.Equal("Hello World!\n", out, entry.dialect)
		assert.True(emu.Done(), entry.dialect)
	}
}

func TestEmulator_Mapping(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.Dialect = "so"
	cfg.Mapping = "abc"
	emu, err := NewEmulator(cfg)
	assert.NoError(err)

	// aa: +, cb: [, cc: -, bc: ]  then +, !a: .
	prog, err := emu.Translate("aa cb cc bc aa ca")
	assert.NoError(err)
	assert.Equal("+[-]+.", prog.String())
}

func TestEmulator_Infer(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, "")

	out, err := emu.RunSource(context.Background(), rio.Source{Name: "hello.bf", Text: helloWorld})
	assert.NoError(err)
	assert.Equal("Hello World!\n", out)

	prog, err := emu.TranslateSource(rio.Source{Name: "inc.sook.gz", Text: "..!."})
	assert.NoError(err)
	assert.Equal("+.", prog.String())

	_, err = emu.Run(context.Background(), helloWorld)
	assert.ErrorIs(err, ErrNoDialect)

	_, err = emu.TranslateSource(rio.Source{Name: "-", Text: helloWorld})
	assert.ErrorIs(err, ErrNoDialect)

	_, err = emu.TranslateSource(rio.Source{Name: "hello.txt", Text: helloWorld})
	assert.ErrorIs(err, ErrNoDialect)
	assert.ErrorIs(err, dialect.ErrDialectUnknown("hello.txt"))

	// A configured dialect wins over the file name.
	emu = newEmulator(t, "bf")
	prog, err = emu.TranslateSource(rio.Source{Name: "hello.ook", Text: "Ook. Ook. +"})
	assert.NoError(err)
	assert.Equal("..+", prog.String())
}

func TestEmulator_Position(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, "bf")
	emu.Config.MaxDataSize = 2
	_, err := emu.Run(context.Background(), "+\n  <<<")
	assert.ErrorIs(err, vm.ErrTapeLeft)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(vm.Position{Line: 2, Column: 4}, rt.Position)
	assert.True(strings.HasPrefix(err.Error(), "2:4: "))
	assert.Equal(vm.Position{Line: 2, Column: 4}, emu.Position())

	var fault *vm.ErrFault
	assert.True(errors.As(err, &fault))
	assert.Equal(2, fault.Pc)
}

func TestEmulator_Unbalanced(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, "bf")
	_, err := emu.Run(context.Background(), "+\n+[\n]]")
	assert.ErrorIs(err, vm.ErrUnbalancedLoop)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(vm.Position{Line: 3, Column: 2}, rt.Position)

	emu.Config.Lenient = true
	out, err := emu.Run(context.Background(), "+.\n]")
	assert.ErrorIs(err, vm.ErrUnbalancedLoop)
	assert.Equal("\x01", out)
	assert.True(errors.As(err, &rt))
	assert.Equal(vm.Position{Line: 2, Column: 1}, rt.Position)
}

func TestEmulator_Input(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, "bf")
	emu.Input = strings.NewReader("ook")
	out, err := emu.Run(context.Background(), ",[.,]")
	assert.ErrorIs(err, vm.ErrInputExhausted)
	assert.Equal("ook", out)
}

func TestEmulator_Tick(t *testing.T) {
	assert := assert.New(t)

	emu := newEmulator(t, "bf")
	prog, err := emu.Translate("+ +\n.")
	assert.NoError(err)
	assert.NoError(emu.Load(prog))

	var positions []vm.Position
	for {
		positions = append(positions, emu.Position())
		done, err := emu.Tick()
		assert.NoError(err)
		if done {
			break
		}
	}
	assert.Equal([]vm.Position{{Line: 1, Column: 1}, {Line: 1, Column: 3}, {Line: 2, Column: 1}}, positions)
	assert.Equal([]byte{2}, emu.Bytes())
}

func TestEmulator_Limits(t *testing.T) {
	assert := assert.New(t)

	cfg := config.Default()
	cfg.Dialect = "bf"
	cfg.StepLimit = 100
	emu, err := NewEmulator(cfg)
	assert.NoError(err)

	_, err = emu.Run(context.Background(), "+[]")
	assert.ErrorIs(err, vm.ErrStepLimit)

	emu.Config.StepLimit = 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = emu.Run(ctx, "+[]")
	assert.ErrorIs(err, context.Canceled)

	emu.Config.StrictOutput = true
	emu.Config.MaxOutputSize = 1
	out, err := emu.Run(context.Background(), "+..")
	assert.ErrorIs(err, vm.ErrOutputLimit)
	assert.Equal("\x01", out)
}
