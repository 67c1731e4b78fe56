//go:build linux
// +build linux

package watch

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Veraticus/dark-light/pkg/interfaces"
)

// DefaultChangeSource watches the dconf user database that backs gsettings.
func DefaultChangeSource(logger *zap.Logger) interfaces.ChangeSource {
	path := dconfUserDatabase()
	if path == "" {
		return nil
	}
	return NewFileChangeSource(logger, path)
}

// dconfUserDatabase returns $XDG_CONFIG_HOME/dconf/user, defaulting to ~/.config.
func dconfUserDatabase() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "dconf", "user")
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "dconf", "user")
	}

	return ""
}
