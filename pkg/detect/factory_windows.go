//go:build windows
// +build windows

package detect

import (
	"github.com/Veraticus/dark-light/pkg/interfaces"
)

// newPlatformDetector creates a Windows-specific detector.
func newPlatformDetector() interfaces.Detector {
	return NewRegistryDetector()
}
