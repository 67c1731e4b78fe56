// Package watch blocks until the OS appearance preference changes.
//
// The watcher polls its Detector on a fixed interval. When a ChangeSource is
// configured, its hints trigger an immediate re-detection, so a change is
// usually observed well before the next tick. Hints are never trusted on their
// own: the Detector is always the authority.
package watch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Veraticus/dark-light/pkg/interfaces"
	"github.com/Veraticus/dark-light/pkg/types"
)

// DefaultPollInterval is the delay between detections when no hint arrives.
const DefaultPollInterval = 500 * time.Millisecond

// Watcher waits for the detected mode to differ from a baseline.
type Watcher struct {
	detector interfaces.Detector
	source   interfaces.ChangeSource
	interval time.Duration
	logger   *zap.Logger
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithPollInterval sets the delay between detections. Non-positive values are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithChangeSource adds OS change hints on top of polling. A nil source disables hints.
func WithChangeSource(source interfaces.ChangeSource) Option {
	return func(w *Watcher) {
		w.source = source
	}
}

// WithLogger sets the logger for progress diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a watcher around detector.
func New(detector interfaces.Detector, opts ...Option) *Watcher {
	w := &Watcher{
		detector: detector,
		interval: DefaultPollInterval,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// PollInterval returns the configured polling interval.
func (w *Watcher) PollInterval() time.Duration {
	return w.interval
}

type result struct {
	mode types.Mode
	err  error
}

// Watch detects the current mode, then blocks until a detection returns a
// different mode and returns it. The wait runs on its own goroutine and is
// joined before Watch returns. The only error is ctx.Err(), returned together
// with the baseline mode.
func (w *Watcher) Watch(ctx context.Context) (types.Mode, error) {
	baseline := w.detector.Detect()
	w.logger.Info("current mode", zap.Stringer("mode", baseline))

	results := make(chan result, 1)
	go func() {
		mode, err := w.waitForChange(ctx, baseline)
		results <- result{mode: mode, err: err}
	}()

	r := <-results
	return r.mode, r.err
}

// Follow calls fn with every mode change until ctx is done.
func (w *Watcher) Follow(ctx context.Context, fn func(types.Mode)) error {
	return w.FollowFrom(ctx, w.detector.Detect(), fn)
}

// FollowFrom is Follow starting from a mode the caller already detected.
// Each change becomes the baseline for the next one, so no transition is lost
// between two waits.
func (w *Watcher) FollowFrom(ctx context.Context, baseline types.Mode, fn func(types.Mode)) error {
	w.logger.Info("current mode", zap.Stringer("mode", baseline))

	for {
		mode, err := w.waitForChange(ctx, baseline)
		if err != nil {
			return err
		}
		fn(mode)
		baseline = mode
	}
}

// waitForChange polls until the mode differs from baseline.
func (w *Watcher) waitForChange(ctx context.Context, baseline types.Mode) (types.Mode, error) {
	if err := ctx.Err(); err != nil {
		return baseline, err
	}

	sourceCtx, cancel := context.WithCancel(ctx)
	hints := w.startSource(sourceCtx)
	defer func() {
		cancel()
		// Sources close their channel once the context ends; wait for that so
		// no source goroutine outlives the watch.
		if hints != nil {
			for range hints {
			}
		}
	}()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return baseline, ctx.Err()
		case <-ticker.C:
		case _, ok := <-hints:
			if !ok {
				w.logger.Debug("change source closed, polling only")
				hints = nil
				continue
			}
			w.logger.Debug("change hint received")
		}

		if mode := w.detector.Detect(); mode != baseline {
			w.logger.Info("new mode", zap.Stringer("mode", mode), zap.Stringer("previous", baseline))
			return mode, nil
		}
	}
}

// startSource subscribes to the change source, or returns nil to poll only.
func (w *Watcher) startSource(ctx context.Context) <-chan struct{} {
	if w.source == nil {
		return nil
	}

	hints, err := w.source.Changes(ctx)
	if err != nil {
		w.logger.Warn("change notifications unavailable, polling only",
			zap.Error(fmt.Errorf("failed to start change source: %w", err)))
		return nil
	}
	return hints
}
