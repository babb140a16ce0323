// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/ezrec/ookbf/config"
	"github.com/ezrec/ookbf/dialect"
	"github.com/ezrec/ookbf/emulator"
	rio "github.com/ezrec/ookbf/io"
)

var errUsage = errors.New("usage")

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %v [flags] <command> [command flags] <file|-|code>\n", os.Args[0])
	fmt.Fprintf(out, "\nCommands:\n")
	fmt.Fprintf(out, "  brainfuck, b       Run a Brainfuck program\n")
	fmt.Fprintf(out, "  ook, o             Run an Ook! program\n")
	fmt.Fprintf(out, "  short-ook, so      Run a Short Ook! program (-m mapping)\n")
	fmt.Fprintf(out, "  run                Run a program, inferring the dialect from its file name\n")
	fmt.Fprintf(out, "  convert            Convert a program to another dialect (-to dialect)\n")
	fmt.Fprintf(out, "\nFlags:\n")
	flag.PrintDefaults()
}

// expr is a flag holding an integer expression.
type expr struct {
	value int
}

func (e *expr) String() string {
	if e == nil {
		return "0"
	}
	return fmt.Sprint(e.value)
}

func (e *expr) Set(text string) (err error) {
	e.value, err = config.Eval(text)
	return
}

func main() {
	var configFile string
	var input string
	var tape, output, steps expr
	var strictOutput, lenient bool
	var verbose int

	flag.Usage = usage
	flag.StringVar(&configFile, "c", "", "TOML configuration file")
	flag.Var(&tape, "tape", "Tape size in cells (default 30000)")
	flag.Var(&output, "output", "Output size in bytes (default 10000)")
	flag.Var(&steps, "steps", "Maximum opcodes to execute, 0 is unlimited")
	flag.BoolVar(&strictOutput, "strict-output", false, "Fail when output exceeds the output size")
	flag.BoolVar(&lenient, "lenient", false, "Run programs with unbalanced loops")
	flag.StringVar(&input, "i", "", "Input file for ',' opcodes, '-' for stdin")
	flag.IntVar(&verbose, "v", 0, "Log verbosity")

	flag.Parse()

	cfg := config.Default()
	if len(configFile) != 0 {
		err := cfg.LoadFile(configFile)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
	}

	err := cfg.LoadEnv()
	if err != nil {
		log.Fatal(err)
	}

	// Command line flags override the file and environment.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "tape":
			cfg.MaxDataSize = tape.value
		case "output":
			cfg.MaxOutputSize = output.value
		case "steps":
			cfg.StepLimit = steps.value
		case "strict-output":
			cfg.StrictOutput = strictOutput
		case "lenient":
			cfg.Lenient = lenient
		case "i":
			cfg.Input = input
		case "v":
			cfg.Verbosity = verbose
		}
	})

	commonlog.Configure(cfg.Verbosity, nil)

	err = command(&cfg, flag.Args())
	if errors.Is(err, errUsage) {
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

// command runs the command named by args[0].
func command(cfg *config.Config, args []string) (err error) {
	if len(args) == 0 {
		err = errUsage
		return
	}

	name := args[0]
	cmd := flag.NewFlagSet(name, flag.ExitOnError)
	var to string

	switch name {
	case "run":
	case "convert":
		cmd.StringVar(&to, "to", "brainfuck", "Target dialect")
	case "short-ook", "so":
		cmd.StringVar(&cfg.Mapping, "m", cfg.Mapping, "Short Ook! mapping of '.', '?' and '!'")
		cmd.StringVar(&cfg.Mapping, "mapping", cfg.Mapping, "Short Ook! mapping of '.', '?' and '!'")
		cfg.Dialect = name
	default:
		_, err = dialect.ParseDialect(name)
		if err != nil {
			return errors.Join(errUsage, err)
		}
		cfg.Dialect = name
	}

	err = cmd.Parse(args[1:])
	if err != nil {
		return
	}
	if cmd.NArg() != 1 {
		err = errUsage
		return
	}

	src, err := rio.ReadSource(cmd.Arg(0))
	if err != nil {
		return
	}

	emu, err := emulator.NewEmulator(*cfg)
	if err != nil {
		return
	}

	if name == "convert" {
		return convert(emu, src, to)
	}

	in, err := openInput(cfg.Input)
	if err != nil {
		return
	}
	if in != nil {
		defer in.Close()
		emu.Input = in
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := emu.RunSource(ctx, src)
	if len(out) != 0 || err == nil {
		fmt.Println(out)
	}
	return
}

// convert writes the source translated into another dialect.
func convert(emu *emulator.Emulator, src rio.Source, to string) (err error) {
	d, err := dialect.ParseDialect(to)
	if err != nil {
		return
	}

	prog, err := emu.TranslateSource(src)
	if err != nil {
		return
	}

	m, err := emu.Config.ShortOokMapping()
	if err != nil {
		return
	}

	text, err := dialect.Encode(d, prog, m)
	if err != nil {
		return
	}

	fmt.Println(text)
	return
}

// openInput opens the input for ',' opcodes.
func openInput(name string) (in io.ReadCloser, err error) {
	switch name {
	case "":
		return
	case "-":
		in = io.NopCloser(os.Stdin)
		return
	}

	ld := &rio.Loader{}
	in, err = ld.Open(name)
	if err != nil {
		err = fmt.Errorf("%v: %w", name, err)
	}
	return
}
