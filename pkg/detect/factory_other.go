//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package detect

import (
	"github.com/Veraticus/dark-light/pkg/interfaces"
)

// newPlatformDetector creates a fallback detector for unsupported platforms.
func newPlatformDetector() interfaces.Detector {
	return NewFallbackDetector()
}
