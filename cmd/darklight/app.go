package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/Veraticus/dark-light/pkg/config"
	"github.com/Veraticus/dark-light/pkg/detect"
	"github.com/Veraticus/dark-light/pkg/interfaces"
	"github.com/Veraticus/dark-light/pkg/status"
	"github.com/Veraticus/dark-light/pkg/types"
	"github.com/Veraticus/dark-light/pkg/watch"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config   *config.Config
	Logger   *zap.Logger
	Detector interfaces.Detector
	Watcher  *watch.Watcher
	Printer  *status.Printer
}

// loggerSetter is implemented by detectors that can report swallowed errors
type loggerSetter interface {
	SetLogger(logger *zap.Logger)
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, out io.Writer, color bool) (*Dependencies, error) {
	format, err := status.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	deps := &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Detector: detect.New(),
		Printer:  status.NewPrinter(out, format, color),
	}

	if ls, ok := deps.Detector.(loggerSetter); ok {
		ls.SetLogger(logger.Named("detect"))
	}

	opts := []watch.Option{
		watch.WithPollInterval(cfg.PollInterval),
		watch.WithLogger(logger.Named("watch")),
	}
	if cfg.Notify {
		opts = append(opts, watch.WithChangeSource(watch.DefaultChangeSource(logger.Named("source"))))
	}
	deps.Watcher = watch.New(deps.Detector, opts...)

	return deps, nil
}

// newLogger returns a development logger on stderr when verbose, otherwise a no-op logger
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}

	zcfg := zap.NewDevelopmentConfig()
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

// Close cleans up all dependencies
func (d *Dependencies) Close() {
	if d.Logger != nil {
		_ = d.Logger.Sync() // Best effort
	}
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Detect prints the current mode
func (a *Application) Detect() error {
	return a.deps.Printer.Print(a.deps.Detector.Detect())
}

// Watch waits for the next change and prints the new mode
func (a *Application) Watch(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	mode, err := a.deps.Watcher.Watch(ctx)
	if err != nil {
		return fmt.Errorf("no appearance change observed: %w", err)
	}

	return a.deps.Printer.Print(mode)
}

// Follow prints the current mode and then every change until ctx ends or the timeout expires
func (a *Application) Follow(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	previous := a.deps.Detector.Detect()
	if err := a.deps.Printer.Print(previous); err != nil {
		return err
	}

	var printErr error
	err := a.deps.Watcher.FollowFrom(ctx, previous, func(mode types.Mode) {
		if err := a.deps.Printer.PrintChange(previous, mode); err != nil && printErr == nil {
			printErr = err
		}
		previous = mode
	})
	if printErr != nil {
		return printErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("follow timed out: %w", err)
	}
	return err
}

// exitCode maps the result of a run to the process exit code
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		// Standard interrupt code
		return 130
	default:
		return 1
	}
}

// withTimeout applies the configured timeout, if any
func (a *Application) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.deps.Config.Timeout > 0 {
		return context.WithTimeout(ctx, a.deps.Config.Timeout)
	}
	return context.WithCancel(ctx)
}
