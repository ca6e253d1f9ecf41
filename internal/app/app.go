package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/agbru/statline/internal/config"
	apperrors "github.com/agbru/statline/internal/errors"
	"github.com/agbru/statline/internal/logging"
	"github.com/agbru/statline/internal/orchestration"
	"github.com/agbru/statline/internal/render"
	"github.com/agbru/statline/internal/sampler"
	"github.com/agbru/statline/internal/sysmon"
)

// Application represents one statline invocation.
type Application struct {
	Config    config.AppConfig
	Provider  sysmon.Provider
	Sleeper   sampler.Sleeper
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithProvider sets a custom telemetry provider for the application.
func WithProvider(p sysmon.Provider) AppOption {
	return func(a *Application) { a.Provider = p }
}

// WithSleeper replaces the wall clock used for the sampling waits.
func WithSleeper(s sampler.Sleeper) AppOption {
	return func(a *Application) { a.Sleeper = s }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// Parse problems have already been reported on errWriter when an error is
// returned.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "statline"
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

	if app.Provider == nil {
		app.Provider = sysmon.NewHostProvider()
	}
	if app.Logger == nil {
		app.Logger = logging.NewLogger(errWriter, "statline").
			WithLevel(config.DefaultLogLevel).
			WithLevel(cfg.LogLevel)
	}
	return app, nil
}

// Run probes the host, renders the requested metrics and prints the status
// line to out. It returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out)
		return apperrors.ExitSuccess
	}

	if err := sysmon.Probe(ctx, a.Provider); err != nil {
		return a.fail(apperrors.UnsupportedPlatformError{Cause: err})
	}
	if len(a.Config.Metrics) == 0 {
		a.Logger.Debug("no metrics requested")
		return apperrors.ExitSuccess
	}

	sleeper := a.Sleeper
	if sleeper == nil {
		sleeper = clock.New()
	}
	env := render.Env{
		Config:   a.Config,
		Provider: a.Provider,
		Sleeper:  sleeper,
		Sampler:  sampler.New(a.Provider, sampler.WithSleeper(sleeper), sampler.WithLogger(a.Logger)),
		Logger:   a.Logger,
	}

	start := time.Now()
	line, err := orchestration.Run(ctx, a.Config.Metrics, env)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(out, line)
	a.Logger.Info("status line printed",
		logging.Int("fragments", len(a.Config.Metrics)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return apperrors.ExitSuccess
}

func (a *Application) fail(err error) int {
	a.Logger.Error("invocation failed", err)
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	return apperrors.ExitCodeFor(err)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
