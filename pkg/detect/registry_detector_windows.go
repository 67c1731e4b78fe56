//go:build windows
// +build windows

package detect

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/windows/registry"

	"github.com/Veraticus/dark-light/pkg/types"
)

// RegistryDetector reads AppsUseLightTheme from the current user's Personalize key.
type RegistryDetector struct {
	logger    *zap.Logger
	readValue func() (uint64, error)
}

// NewRegistryDetector creates a new registry-backed detector.
func NewRegistryDetector() *RegistryDetector {
	return &RegistryDetector{
		logger:    zap.NewNop(),
		readValue: readAppsUseLightTheme,
	}
}

// SetLogger sets the logger used for swallowed query errors.
func (d *RegistryDetector) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.logger = logger
}

// Detect returns Dark when AppsUseLightTheme is 0.
func (d *RegistryDetector) Detect() types.Mode {
	value, err := d.readValue()
	if err != nil && !errors.Is(err, registry.ErrNotExist) {
		d.logger.Debug("registry read failed, assuming light",
			zap.String("key", PersonalizeKeyPath), zap.Error(err))
	}
	return modeFromRegistryValue(value, err)
}

// readAppsUseLightTheme reads the DWORD from HKCU.
func readAppsUseLightTheme() (uint64, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, PersonalizeKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return 0, fmt.Errorf("failed to open personalize key: %w", err)
	}
	defer key.Close()

	value, _, err := key.GetIntegerValue(AppsUseLightThemeValue)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", AppsUseLightThemeValue, err)
	}
	return value, nil
}
