//go:build windows
// +build windows

package watch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/Veraticus/dark-light/pkg/detect"
	"github.com/Veraticus/dark-light/pkg/interfaces"
)

// registryWaitSlice bounds each wait so cancellation is noticed.
const registryWaitSlice = 250 * time.Millisecond

// RegistryChangeSource signals when values under the Personalize key are written.
type RegistryChangeSource struct {
	keyPath string
	logger  *zap.Logger
}

// DefaultChangeSource watches the Personalize registry key.
func DefaultChangeSource(logger *zap.Logger) interfaces.ChangeSource {
	return NewRegistryChangeSource(logger, detect.PersonalizeKeyPath)
}

// NewRegistryChangeSource creates a source for an HKCU subkey.
func NewRegistryChangeSource(logger *zap.Logger, keyPath string) *RegistryChangeSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistryChangeSource{
		keyPath: keyPath,
		logger:  logger,
	}
}

// Changes registers RegNotifyChangeKeyValue and re-arms it after every signal.
func (s *RegistryChangeSource) Changes(ctx context.Context) (<-chan struct{}, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, s.keyPath, registry.NOTIFY)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s for notification: %w", s.keyPath, err)
	}

	event, err := windows.CreateEvent(nil, 0, 0, nil)
	if err != nil {
		_ = key.Close()
		return nil, fmt.Errorf("failed to create notification event: %w", err)
	}

	out := make(chan struct{}, 1)
	go func() {
		// The registration belongs to the calling thread and is signalled if it exits.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		defer close(out)
		defer func() { _ = windows.CloseHandle(event) }()
		defer func() { _ = key.Close() }()

		for {
			err := windows.RegNotifyChangeKeyValue(windows.Handle(key), false,
				windows.REG_NOTIFY_CHANGE_LAST_SET, event, true)
			if err != nil {
				s.logger.Debug("registry notification failed", zap.Error(err))
				return
			}

			if !s.waitForSignal(ctx, event) {
				return
			}

			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()

	return out, nil
}

// waitForSignal returns true once event fires, false if ctx ends or the wait fails.
func (s *RegistryChangeSource) waitForSignal(ctx context.Context, event windows.Handle) bool {
	timeout := uint32(registryWaitSlice.Milliseconds())
	for {
		if ctx.Err() != nil {
			return false
		}

		status, err := windows.WaitForSingleObject(event, timeout)
		if err != nil {
			s.logger.Debug("waiting for registry notification failed", zap.Error(err))
			return false
		}
		if status == windows.WAIT_OBJECT_0 {
			return true
		}
	}
}
