// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs Brainfuck family programs from source text,
// reporting errors against their source positions.
package emulator

import (
	"context"
	"errors"
	"io"

	"github.com/tliron/commonlog"

	"github.com/ezrec/ookbf/config"
	"github.com/ezrec/ookbf/dialect"
	rio "github.com/ezrec/ookbf/io"
	"github.com/ezrec/ookbf/vm"
)

// Emulator state. Configuration, translated program and engine.
type Emulator struct {
	Config     config.Config    // Interpreter settings.
	Input      io.Reader        // Input for ',' opcodes; nil means no input.
	Log        commonlog.Logger // Diagnostics; nil uses the "ookbf.emulator" logger.
	Program    *vm.Program      // Currently loaded program.
	*vm.Engine                  // Engine executing Program.
}

// NewEmulator creates a new emulator from a validated configuration.
func NewEmulator(cfg config.Config) (emu *Emulator, err error) {
	err = cfg.Validate()
	if err != nil {
		return
	}

	emu = &Emulator{
		Config: cfg,
	}

	return
}

func (emu *Emulator) logger() commonlog.Logger {
	if emu.Log == nil {
		return commonlog.GetLogger("ookbf.emulator")
	}
	return emu.Log
}

// Dialect returns the configured dialect, or the one inferred from name.
func (emu *Emulator) Dialect(name string) (d dialect.Dialect, err error) {
	if len(emu.Config.Dialect) != 0 {
		return dialect.ParseDialect(emu.Config.Dialect)
	}

	if len(name) == 0 || name == "-" {
		err = ErrNoDialect
		return
	}

	d, err = dialect.ForPath(name)
	if err != nil {
		err = errors.Join(ErrNoDialect, err)
	}
	return
}

// Translate converts source text into a program, using the configured dialect.
func (emu *Emulator) Translate(text string) (prog *vm.Program, err error) {
	return emu.TranslateSource(rio.Source{Text: text})
}

// TranslateSource converts a source into a program. When no dialect is
// configured, it is inferred from the source name.
func (emu *Emulator) TranslateSource(src rio.Source) (prog *vm.Program, err error) {
	d, err := emu.Dialect(src.Name)
	if err != nil {
		return
	}

	m, err := emu.Config.ShortOokMapping()
	if err != nil {
		return
	}

	prog, err = dialect.Translate(d, src.Text, m)
	if err != nil {
		return
	}

	emu.logger().Debugf("%v: %v source, %d opcodes", src.Name, d, prog.Len())

	return
}

// Load prepares the program for execution.
func (emu *Emulator) Load(prog *vm.Program) (err error) {
	cfg := &emu.Config

	opts := vm.Options{
		StepLimit:    cfg.StepLimit,
		StrictOutput: cfg.StrictOutput,
		Lenient:      cfg.Lenient,
		Input:        emu.Input,
		Log:          emu.Log,
	}

	eng, err := vm.NewWithOptions(prog, cfg.MaxDataSize, cfg.MaxOutputSize, opts)
	if err != nil {
		err = emu.locate(prog, err)
		return
	}

	emu.Program = prog
	emu.Engine = eng

	return
}

// locate attaches the source position of a program error.
func (emu *Emulator) locate(prog *vm.Program, err error) error {
	if err == nil {
		return nil
	}

	var fault *vm.ErrFault
	if errors.As(err, &fault) {
		return &ErrRuntime{Position: prog.Position(fault.Pc), Err: err}
	}

	var unbalanced *vm.ErrUnbalanced
	if errors.As(err, &unbalanced) {
		pc := -1
		for _, list := range [][]int{unbalanced.Close, unbalanced.Open} {
			if len(list) > 0 && (pc < 0 || list[0] < pc) {
				pc = list[0]
			}
		}
		return &ErrRuntime{Position: prog.Position(pc), Err: err}
	}

	return err
}

// Position returns the source position of the next opcode to execute.
func (emu *Emulator) Position() (pos vm.Position) {
	if emu.Engine == nil {
		return
	}
	return emu.Program.Position(emu.Engine.Pc)
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.Engine == nil {
		err = ErrNoProgram
		return
	}

	done, err = emu.Engine.Tick()
	err = emu.locate(emu.Program, err)
	return
}

// Run translates and executes source text, returning its output.
// Output produced before an error is returned along with the error.
func (emu *Emulator) Run(ctx context.Context, text string) (out string, err error) {
	return emu.RunSource(ctx, rio.Source{Text: text})
}

// RunSource translates and executes a source, returning its output.
func (emu *Emulator) RunSource(ctx context.Context, src rio.Source) (out string, err error) {
	prog, err := emu.TranslateSource(src)
	if err != nil {
		return
	}

	err = emu.Load(prog)
	if err != nil {
		return
	}

	out, err = emu.Engine.RunContext(ctx)
	err = emu.locate(prog, err)
	return
}
