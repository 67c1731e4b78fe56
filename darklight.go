// Package darklight detects whether the operating system is in dark or light mode.
//
//	switch darklight.Detect() {
//	case darklight.Dark:
//	case darklight.Light:
//	}
//
// Detection never fails. When the platform is unsupported or its settings
// cannot be read, the answer is Light.
package darklight

import (
	"context"

	"github.com/Veraticus/dark-light/pkg/detect"
	"github.com/Veraticus/dark-light/pkg/interfaces"
	"github.com/Veraticus/dark-light/pkg/types"
	"github.com/Veraticus/dark-light/pkg/watch"
)

// Mode is the OS appearance preference.
type Mode = types.Mode

const (
	Dark  = types.Dark
	Light = types.Light
)

// Detect reports the current mode, falling back to Light if it can't be detected.
func Detect() Mode {
	return detect.Detect()
}

// Watch blocks until the mode changes and returns the new mode.
// It never gives up; use WatchContext to bound the wait.
func Watch() Mode {
	mode, _ := WatchContext(context.Background())
	return mode
}

// WatchContext is Watch with cancellation. It uses the platform detector and
// change notifications, polling every watch.DefaultPollInterval unless
// overridden by opts. It returns ctx.Err() if ctx ends first.
func WatchContext(ctx context.Context, opts ...watch.Option) (Mode, error) {
	return watchWith(ctx, detect.New(), opts...)
}

// watchWith runs a watch around detector with the platform change source.
func watchWith(ctx context.Context, detector interfaces.Detector, opts ...watch.Option) (Mode, error) {
	defaults := []watch.Option{watch.WithChangeSource(watch.DefaultChangeSource(nil))}
	w := watch.New(detector, append(defaults, opts...)...)
	return w.Watch(ctx)
}
