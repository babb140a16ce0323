// Package config holds the interpreter settings, layered from defaults, a
// TOML file, the environment and the command line.
//
// Numeric settings accept integer expressions such as "32 * KiB".
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"

	"github.com/ezrec/ookbf/dialect"
)

const (
	DEFAULT_MAX_DATA_SIZE   = 30000 // Tape cells.
	DEFAULT_MAX_OUTPUT_SIZE = 10000 // Output bytes.

	// ENV_PREFIX prefixes every environment variable read by LoadEnv.
	ENV_PREFIX = "OOKBF_"
)

// Config holds the interpreter settings.
type Config struct {
	Dialect       string // Dialect name; empty infers from the file name.
	Mapping       string // Short-Ook character mapping; empty is ".?!".
	MaxDataSize   int    // Tape length.
	MaxOutputSize int    // Output buffer size.
	StepLimit     int    // Maximum executed opcodes; 0 is unlimited.
	StrictOutput  bool   // Fault when output exceeds MaxOutputSize.
	Lenient       bool   // Run programs with unbalanced loops.
	Verbosity     int    // Log verbosity.
	Input         string // Input file for ',' opcodes; "-" is stdin, empty is none.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		MaxDataSize:   DEFAULT_MAX_DATA_SIZE,
		MaxOutputSize: DEFAULT_MAX_OUTPUT_SIZE,
	}
}

// file is the TOML form of Config. Numbers may be integers or expressions.
type file struct {
	Dialect       *string `toml:"dialect"`
	Mapping       *string `toml:"mapping"`
	MaxDataSize   any     `toml:"max-data-size"`
	MaxOutputSize any     `toml:"max-output-size"`
	StepLimit     any     `toml:"step-limit"`
	StrictOutput  *bool   `toml:"strict-output"`
	Lenient       *bool   `toml:"lenient"`
	Verbosity     any     `toml:"verbosity"`
	Input         *string `toml:"input"`
}

// toInt converts a TOML or environment value to an int.
func toInt(key string, value any) (n int, err error) {
	switch v := value.(type) {
	case string:
		// Decimal only; a leading zero is not octal.
		n, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			n, err = Eval(v)
		}
	default:
		n, err = cast.ToIntE(v)
	}
	if err != nil {
		err = &ErrValue{Key: key, Err: err}
	}
	return
}

// setInt stores value into dst, if present.
func setInt(key string, value any, dst *int) (err error) {
	if value == nil {
		return
	}
	n, err := toInt(key, value)
	if err != nil {
		return
	}
	*dst = n
	return
}

// Parse applies TOML settings to the configuration.
func (cfg *Config) Parse(data []byte) (err error) {
	var fc file
	err = toml.Unmarshal(data, &fc)
	if err != nil {
		return
	}

	if fc.Dialect != nil {
		cfg.Dialect = *fc.Dialect
	}
	if fc.Mapping != nil {
		cfg.Mapping = *fc.Mapping
	}
	if fc.StrictOutput != nil {
		cfg.StrictOutput = *fc.StrictOutput
	}
	if fc.Lenient != nil {
		cfg.Lenient = *fc.Lenient
	}
	if fc.Input != nil {
		cfg.Input = *fc.Input
	}

	err = errors.Join(
		setInt("max-data-size", fc.MaxDataSize, &cfg.MaxDataSize),
		setInt("max-output-size", fc.MaxOutputSize, &cfg.MaxOutputSize),
		setInt("step-limit", fc.StepLimit, &cfg.StepLimit),
		setInt("verbosity", fc.Verbosity, &cfg.Verbosity),
	)
	return
}

// LoadFile applies the settings of a TOML file.
func (cfg *Config) LoadFile(path string) (err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	err = cfg.Parse(data)
	if err != nil {
		err = &ErrValue{Key: path, Err: err}
	}
	return
}

// LoadEnv applies OOKBF_* environment variables. Variables are first loaded
// from the dotenv files given, or from ".env" if it exists. Variables already
// set in the environment take precedence over dotenv files.
func (cfg *Config) LoadEnv(files ...string) (err error) {
	err = godotenv.Load(files...)
	if err != nil {
		if len(files) > 0 || !errors.Is(err, fs.ErrNotExist) {
			return
		}
		err = nil
	}

	str := func(name string, dst *string) {
		value, ok := os.LookupEnv(ENV_PREFIX + name)
		if ok {
			*dst = value
		}
	}
	num := func(name string, dst *int) error {
		value, ok := os.LookupEnv(ENV_PREFIX + name)
		if !ok {
			return nil
		}
		return setInt(ENV_PREFIX+name, value, dst)
	}
	flag := func(name string, dst *bool) error {
		value, ok := os.LookupEnv(ENV_PREFIX + name)
		if !ok {
			return nil
		}
		b, err := cast.ToBoolE(value)
		if err != nil {
			return &ErrValue{Key: ENV_PREFIX + name, Err: err}
		}
		*dst = b
		return nil
	}

	str("DIALECT", &cfg.Dialect)
	str("MAPPING", &cfg.Mapping)
	str("INPUT", &cfg.Input)

	err = errors.Join(
		num("MAX_DATA_SIZE", &cfg.MaxDataSize),
		num("MAX_OUTPUT_SIZE", &cfg.MaxOutputSize),
		num("STEP_LIMIT", &cfg.StepLimit),
		num("VERBOSITY", &cfg.Verbosity),
		flag("STRICT_OUTPUT", &cfg.StrictOutput),
		flag("LENIENT", &cfg.Lenient),
	)
	return
}

// Validate checks the settings for consistency.
func (cfg *Config) Validate() (err error) {
	var errs []error
	if cfg.MaxDataSize <= 0 {
		errs = append(errs, ErrTapeSize)
	}
	if cfg.MaxOutputSize < 0 {
		errs = append(errs, ErrOutputSize)
	}
	if cfg.StepLimit < 0 {
		errs = append(errs, ErrStepLimit)
	}
	if len(cfg.Dialect) != 0 {
		_, err = dialect.ParseDialect(cfg.Dialect)
		errs = append(errs, err)
	}
	_, err = cfg.ShortOokMapping()
	errs = append(errs, err)

	err = errors.Join(errs...)
	return
}

// ShortOokMapping returns the parsed Short-Ook mapping.
func (cfg *Config) ShortOokMapping() (m dialect.Mapping, err error) {
	if len(cfg.Mapping) == 0 {
		m = dialect.DefaultMapping
		return
	}

	return dialect.ParseMapping(cfg.Mapping)
}
