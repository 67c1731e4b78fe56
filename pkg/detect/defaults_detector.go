package detect

import (
	"go.uber.org/zap"

	"github.com/Veraticus/dark-light/pkg/types"
)

const (
	defaultsCommand      = "defaults"
	appleInterfaceStyle  = "AppleInterfaceStyle"
	defaultsGlobalDomain = "-g"
)

// DefaultsDetector reads the macOS AppleInterfaceStyle user default.
// The key only exists while dark mode is on, so a failed read means Light.
type DefaultsDetector struct {
	logger      *zap.Logger
	cmdExecutor func(name string, args ...string) ([]byte, error)
}

// NewDefaultsDetector creates a new user-defaults detector.
func NewDefaultsDetector() *DefaultsDetector {
	return &DefaultsDetector{
		logger:      zap.NewNop(),
		cmdExecutor: defaultCmdExecutor,
	}
}

// SetLogger sets the logger used for swallowed query errors.
func (d *DefaultsDetector) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.logger = logger
}

// Detect returns Dark when AppleInterfaceStyle contains "dark".
func (d *DefaultsDetector) Detect() types.Mode {
	output, err := d.cmdExecutor(defaultsCommand, "read", defaultsGlobalDomain, appleInterfaceStyle)
	if err != nil {
		d.logger.Debug("defaults read failed, assuming light",
			zap.String("key", appleInterfaceStyle), zap.Error(err))
		return types.Light
	}

	return modeFromText(string(output))
}
