// Package config handles command-line and environment configuration for the
// prime sweep.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	apperrors "github.com/agbru/primesweep/internal/errors"
)

const (
	// EnvPrefix is prepended to every environment variable override.
	EnvPrefix = "PRIMESWEEP_"
	// DefaultUpperLimit is the bound used when neither a flag nor the
	// environment supplies one.
	DefaultUpperLimit uint32 = 1000
)

// SupportedShells lists the shells accepted by --completion.
var SupportedShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// UpperLimit is the inclusive bound N of the sweep.
	UpperLimit uint32
	// Quiet prints only the result line.
	Quiet bool
	// Verbose enables debug logging and run statistics.
	Verbose bool
	// NoColor disables ANSI colors.
	NoColor bool
	// OutputFile, when set, receives a copy of the result with a header.
	OutputFile string
	// MetricsFile, when set, receives Prometheus text-format metrics.
	MetricsFile string
	// Completion names a shell whose completion script should be printed.
	Completion string
}

// Validate checks the configuration for semantically invalid combinations.
func (c AppConfig) Validate() error {
	if c.Completion != "" && !isSupportedShell(c.Completion) {
		return apperrors.ValidationError{
			Field:   "completion",
			Message: fmt.Sprintf("unsupported shell %q (accepted values: bash, zsh, fish, powershell)", c.Completion),
		}
	}
	if c.Quiet && c.Verbose {
		return apperrors.ValidationError{Field: "quiet", Message: "cannot be combined with --verbose"}
	}
	if c.OutputFile != "" && c.MetricsFile != "" &&
		filepath.Clean(c.OutputFile) == filepath.Clean(c.MetricsFile) {
		return apperrors.ValidationError{Field: "metrics-file", Message: "must differ from --output"}
	}
	return nil
}

func isSupportedShell(shell string) bool {
	if shell == "ps" {
		return true
	}
	for _, s := range SupportedShells {
		if s == shell {
			return true
		}
	}
	return false
}

// uint32Value implements flag.Value for a 32-bit unsigned integer, which the
// standard flag package does not provide.
type uint32Value uint32

func (v *uint32Value) Set(s string) error {
	parsed, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return fmt.Errorf("value out of range (0..%d)", uint64(^uint32(0)))
		}
		return errors.New("not an unsigned integer")
	}
	*v = uint32Value(parsed)
	return nil
}

func (v *uint32Value) String() string {
	if v == nil {
		return "0"
	}
	return strconv.FormatUint(uint64(*v), 10)
}

// ParseConfig parses command-line arguments into an AppConfig, then applies
// PRIMESWEEP_* environment overrides for flags that were not set explicitly.
// Parse failures are returned as apperrors.ConfigError; usage has already
// been written to errWriter by then. A --help request yields an error that
// matches flag.ErrHelp.
//
// Parameters:
//   - programName: The name shown in usage output.
//   - args: The arguments without the program name.
//   - errWriter: The writer for usage and parse errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: A ConfigError, or a ValidationError from Validate.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{UpperLimit: DefaultUpperLimit}
	limit := (*uint32Value)(&config.UpperLimit)

	fs.Var(limit, "upper-limit", "Upper limit for prime number generation.")
	fs.Var(limit, "u", "Upper limit for prime number generation (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result line.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging and run statistics.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also honors NO_COLOR).")
	fs.StringVar(&config.OutputFile, "output", "", "Also write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file (shorthand).")
	fs.StringVar(&config.MetricsFile, "metrics-file", "", "Write Prometheus text-format metrics to this file.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh, fish or powershell.")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [options]\n\n", programName)
		fmt.Fprintf(fs.Output(), "Computes every prime number in [2, N] with one goroutine per candidate.\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nEnvironment variables %sUPPER_LIMIT, %sQUIET, %sVERBOSE, %sNO_COLOR,\n", EnvPrefix, EnvPrefix, EnvPrefix, EnvPrefix)
		fmt.Fprintf(fs.Output(), "%sOUTPUT and %sMETRICS_FILE apply when the flag is not given.\n", EnvPrefix, EnvPrefix)
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, apperrors.ConfigError{Message: err.Error(), Cause: err}
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return AppConfig{}, err
	}
	return config, nil
}
