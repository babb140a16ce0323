package vm

import (
	"context"
	"errors"
	"io"

	"github.com/tliron/commonlog"
	"golang.org/x/text/encoding/charmap"

	rio "github.com/ezrec/ookbf/io"
)

const (
	// CANCEL_CHECK_INTERVAL is the number of ticks between context checks in RunContext.
	CANCEL_CHECK_INTERVAL = 4096

	// OUTPUT_RESERVE_LIMIT caps the output buffer reserved up front.
	OUTPUT_RESERVE_LIMIT = 64 * 1024
)

// Options are the optional engine policies.
type Options struct {
	StepLimit    int              // Maximum opcodes executed; 0 is unlimited.
	StrictOutput bool             // Fault when output would exceed the output size.
	Lenient      bool             // Accept unbalanced loops; fault only when one is taken.
	Input        io.Reader        // Input for the ',' opcode; nil means no input.
	Log          commonlog.Logger // Diagnostics; nil uses the "ookbf.vm" logger.
}

// Engine is the execution context of one program against one tape.
type Engine struct {
	Program *Program   // Program being executed.
	Table   *JumpTable // Loop bracket pairs of Program.

	Pc   int    // Program cursor.
	Dp   int    // Data cursor.
	Tape []byte // Data cells.

	maxOutput int
	output    []byte
	steps     int
	input     rio.Channel
	opts      Options
	log       commonlog.Logger
}

// New creates an engine with a tape of maxDataSize cells and an output buffer
// sized for maxOutputSize bytes.
func New(prog *Program, maxDataSize, maxOutputSize int) (*Engine, error) {
	return NewWithOptions(prog, maxDataSize, maxOutputSize, Options{})
}

// NewWithOptions creates an engine with explicit policies.
func NewWithOptions(prog *Program, maxDataSize, maxOutputSize int, opts Options) (eng *Engine, err error) {
	if maxDataSize <= 0 {
		err = ErrTapeSize
		return
	}
	if maxOutputSize < 0 {
		err = ErrOutputSize
		return
	}
	if prog == nil {
		prog = &Program{}
	}

	log := opts.Log
	if log == nil {
		log = commonlog.GetLogger("ookbf.vm")
	}

	log.Debugf("program length %d", prog.Len())

	table := Match(prog)
	for _, pc := range table.UnmatchedClose {
		log.Warningf("unmatched ']' at %d %v", pc, prog.Position(pc))
	}
	for _, pc := range table.UnmatchedOpen {
		log.Warningf("unmatched '[' at %d %v", pc, prog.Position(pc))
	}
	if !opts.Lenient {
		err = table.Err()
		if err != nil {
			return
		}
	}

	eng = &Engine{
		Program:   prog,
		Table:     table,
		Tape:      make([]byte, maxDataSize),
		maxOutput: maxOutputSize,
		input:     &rio.Tape{Input: opts.Input},
		opts:      opts,
		log:       log,
	}
	eng.Reset()

	return
}

// Reset restores the tape, cursors and output to their initial state.
func (eng *Engine) Reset() {
	clear(eng.Tape)
	eng.Pc = 0
	eng.Dp = len(eng.Tape) / 2
	eng.steps = 0
	eng.output = make([]byte, 0, min(eng.maxOutput, OUTPUT_RESERVE_LIMIT))
	eng.input.Rewind()
}

// Done returns true once the program cursor has left the program.
func (eng *Engine) Done() bool {
	return eng.Pc >= eng.Program.Len()
}

// Steps returns the number of opcodes executed since the last Reset.
func (eng *Engine) Steps() int {
	return eng.steps
}

// Bytes returns the raw output emitted so far.
func (eng *Engine) Bytes() []byte {
	return eng.output
}

// Output returns the output emitted so far, one character per byte.
func (eng *Engine) Output() string {
	text, err := charmap.ISO8859_1.NewDecoder().Bytes(eng.output)
	if err != nil {
		// Every byte is a valid ISO-8859-1 character.
		panic(err)
	}
	return string(text)
}

// Tick executes a single opcode.
func (eng *Engine) Tick() (done bool, err error) {
	if eng.Done() {
		done = true
		return
	}

	pc := eng.Pc
	op := eng.Program.At(pc)
	defer func() {
		if err != nil {
			err = &ErrFault{Pc: pc, Op: op, Err: err}
		}
	}()

	if eng.opts.StepLimit > 0 && eng.steps >= eng.opts.StepLimit {
		err = ErrStepLimit
		return
	}

	if eng.log.AllowLevel(commonlog.Debug) {
		eng.log.Debugf("pc=%d dp=%d op=%v cell=%d", pc, eng.Dp, op, eng.Tape[eng.Dp])
	}

	next := pc + 1

	switch op {
	case OP_RIGHT:
		if eng.Dp+1 >= len(eng.Tape) {
			err = &ErrTapeBounds{Cursor: eng.Dp, Size: len(eng.Tape), Err: ErrTapeRight}
			return
		}
		eng.Dp++
	case OP_LEFT:
		if eng.Dp == 0 {
			err = &ErrTapeBounds{Cursor: eng.Dp, Size: len(eng.Tape), Err: ErrTapeLeft}
			return
		}
		eng.Dp--
	case OP_INC:
		eng.Tape[eng.Dp]++
	case OP_DEC:
		eng.Tape[eng.Dp]--
	case OP_OUTPUT:
		if eng.opts.StrictOutput && len(eng.output) >= eng.maxOutput {
			err = ErrOutputLimit
			return
		}
		eng.output = append(eng.output, eng.Tape[eng.Dp])
	case OP_INPUT:
		var value byte
		value, err = eng.input.ReadByte()
		if err != nil {
			err = errors.Join(ErrInputExhausted, err)
			return
		}
		eng.Tape[eng.Dp] = value
	case OP_LOOP:
		if eng.Tape[eng.Dp] == 0 {
			next, err = eng.jump(pc)
		}
	case OP_END:
		if eng.Tape[eng.Dp] != 0 {
			next, err = eng.jump(pc)
		}
	}
	if err != nil {
		return
	}

	eng.steps++
	eng.Pc = next
	done = eng.Done()

	return
}

// jump returns the partner of the bracket at pc.
func (eng *Engine) jump(pc int) (target int, err error) {
	target, ok := eng.Table.Target(pc)
	if !ok {
		err = ErrUnbalancedLoop
	}
	return
}

// Run executes the program until it halts, returning its output.
func (eng *Engine) Run() (string, error) {
	return eng.RunContext(context.Background())
}

// RunContext executes the program until it halts or ctx is done.
// On a fault the output emitted before the fault is returned with the error.
func (eng *Engine) RunContext(ctx context.Context) (out string, err error) {
	eng.log.Infof("starting execution")

	var done bool
	for !done {
		if eng.steps%CANCEL_CHECK_INTERVAL == 0 {
			err = ctx.Err()
			if err != nil {
				break
			}
		}
		done, err = eng.Tick()
		if err != nil {
			break
		}
	}

	out = eng.Output()
	if err == nil {
		eng.log.Infof("execution completed in %d steps", eng.steps)
	}

	return
}
