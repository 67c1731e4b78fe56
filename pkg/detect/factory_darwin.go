//go:build darwin
// +build darwin

package detect

import (
	"github.com/Veraticus/dark-light/pkg/interfaces"
)

// newPlatformDetector creates a Darwin-specific detector.
func newPlatformDetector() interfaces.Detector {
	return NewDefaultsDetector()
}
