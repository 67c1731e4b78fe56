//go:build darwin
// +build darwin

package watch

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Veraticus/dark-light/pkg/interfaces"
)

// globalPreferences holds AppleInterfaceStyle and is rewritten when the appearance changes.
const globalPreferences = "Library/Preferences/.GlobalPreferences.plist"

// DefaultChangeSource watches the global preferences plist.
func DefaultChangeSource(logger *zap.Logger) interfaces.ChangeSource {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return NewFileChangeSource(logger, filepath.Join(home, globalPreferences))
}
