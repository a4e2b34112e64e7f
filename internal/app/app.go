package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agbru/primesweep/internal/cli"
	"github.com/agbru/primesweep/internal/config"
	apperrors "github.com/agbru/primesweep/internal/errors"
	"github.com/agbru/primesweep/internal/logging"
	"github.com/agbru/primesweep/internal/metrics"
	"github.com/agbru/primesweep/internal/orchestration"
	"github.com/agbru/primesweep/internal/ui"
)

// Application represents the primesweep application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	// Logger overrides the console logger built in Run. Mainly for tests.
	Logger logging.Logger
	// RunID identifies this run in logs and the result file. Generated by
	// Run when empty.
	RunID string
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets the logger used instead of the stderr console logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithRunID fixes the run identifier.
func WithRunID(id string) AppOption {
	return func(a *Application) { a.RunID = id }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name. A returned error satisfies IsHelpError when
// --help was requested; otherwise it is an apperrors.ConfigError or
// apperrors.ValidationError.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "primesweep"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode and returns
// the process exit code. On success out receives exactly the result line;
// banner, progress, statistics and logs go to ErrWriter.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.ErrWriter == nil {
		a.ErrWriter = io.Discard
	}
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	// Escape codes only reach ErrWriter, so color follows whether it is a terminal.
	ui.InitTheme(a.Config.NoColor || !ui.IsTerminal(a.ErrWriter))
	if a.RunID == "" {
		a.RunID = uuid.NewString()
	}
	logger := a.logger()

	return a.runSweep(ctx, out, logger)
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// logger returns the configured logger, or a stderr console logger whose
// level follows --quiet and --verbose. Every entry carries the run ID.
func (a *Application) logger() logging.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	level := zerolog.InfoLevel
	switch {
	case a.Config.Quiet:
		level = zerolog.WarnLevel
	case a.Config.Verbose:
		level = zerolog.DebugLevel
	}
	return logging.NewConsoleLogger(a.ErrWriter, "primesweep", level, !ui.ColorEnabled()).
		With(logging.String("run_id", a.RunID))
}

// runSweep runs one sweep, prints the result and writes the optional files.
func (a *Application) runSweep(ctx context.Context, out io.Writer, logger logging.Logger) int {
	diag := a.ErrWriter
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, a.RunID, diag)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := diag
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	opts := orchestration.SweepOptions{
		Logger:       logger,
		CollectStats: a.Config.Verbose,
	}
	if a.Config.MetricsFile != "" {
		opts.Metrics = metrics.NewSweepMetrics()
	}

	outcome := orchestration.ExecuteSweep(ctx, a.Config.UpperLimit, opts, progressReporter, progressOut)
	exitCode := orchestration.PresentOutcome(outcome, cli.CLIResultPresenter{}, out, diag)

	if a.Config.OutputFile != "" {
		if err := cli.WriteResultToFile(outcome.Result, a.RunID, a.Config.OutputFile); err != nil {
			logger.Error("writing result file failed", apperrors.WrapError(err, "output %s", a.Config.OutputFile))
			exitCode = apperrors.ExitErrorGeneric
		} else if !a.Config.Quiet {
			fmt.Fprintf(diag, "%s✓ Result saved to: %s%s\n", ui.ColorGreen(), a.Config.OutputFile, ui.ColorReset())
		}
	}

	if opts.Metrics != nil {
		if err := opts.Metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
			logger.Error("writing metrics file failed", apperrors.WrapError(err, "metrics %s", a.Config.MetricsFile))
			exitCode = apperrors.ExitErrorGeneric
		} else {
			logger.Debug("metrics written", logging.String("path", a.Config.MetricsFile))
		}
	}

	return exitCode
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeFor maps an error returned by New to a process exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil, IsHelpError(err):
		return apperrors.ExitSuccess
	case apperrors.IsConfigError(err), errors.As(err, new(apperrors.ValidationError)):
		return apperrors.ExitErrorConfig
	default:
		return apperrors.ExitErrorGeneric
	}
}
