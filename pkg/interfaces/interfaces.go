// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import (
	"context"

	"github.com/Veraticus/dark-light/pkg/types"
)

// Detector answers whether dark mode is currently enabled.
// Implementations never fail; anything they cannot determine is Light.
type Detector interface {
	Detect() types.Mode
}

// ChangeSource signals that the appearance setting may have changed.
// The returned channel is closed once ctx is done.
type ChangeSource interface {
	Changes(ctx context.Context) (<-chan struct{}, error)
}
