package detect

import (
	"github.com/Veraticus/dark-light/pkg/types"
)

// FallbackDetector is used where no platform query exists. It always reports Light.
type FallbackDetector struct{}

// NewFallbackDetector creates a new fallback detector
func NewFallbackDetector() *FallbackDetector {
	return &FallbackDetector{}
}

// Detect always returns Light
func (d *FallbackDetector) Detect() types.Mode {
	return types.Light
}
