//go:build linux
// +build linux

package detect

import (
	"github.com/Veraticus/dark-light/pkg/interfaces"
)

// newPlatformDetector creates a Linux-specific detector.
func newPlatformDetector() interfaces.Detector {
	return desktopDetector(NewGSettingsDetector())
}
