//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

package watch

import (
	"go.uber.org/zap"

	"github.com/Veraticus/dark-light/pkg/interfaces"
)

// DefaultChangeSource returns nil: unsupported platforms only poll.
func DefaultChangeSource(_ *zap.Logger) interfaces.ChangeSource {
	return nil
}
