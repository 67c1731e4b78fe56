package detect

import (
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/Veraticus/dark-light/pkg/interfaces"
	"github.com/Veraticus/dark-light/pkg/types"
)

const (
	gsettingsCommand   = "gsettings"
	gnomeInterface     = "org.gnome.desktop.interface"
	colorSchemeKey     = "color-scheme"
	gtkThemeKey        = "gtk-theme"
	preferLightSetting = "prefer-light"
)

// GSettingsDetector asks the desktop environment for its color scheme via gsettings.
// GNOME 42+ publishes color-scheme; older sessions only expose the GTK theme name,
// which is consulted when color-scheme is missing or left at "default".
type GSettingsDetector struct {
	logger      *zap.Logger
	cmdExecutor func(name string, args ...string) ([]byte, error)
	lookPath    func(file string) (string, error)
}

// NewGSettingsDetector creates a new gsettings-backed detector.
func NewGSettingsDetector() *GSettingsDetector {
	return &GSettingsDetector{
		logger:      zap.NewNop(),
		cmdExecutor: defaultCmdExecutor,
		lookPath:    exec.LookPath,
	}
}

// SetLogger sets the logger used for swallowed query errors.
func (d *GSettingsDetector) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.logger = logger
}

// Detect returns Dark if the color scheme or GTK theme name contains "dark".
func (d *GSettingsDetector) Detect() types.Mode {
	scheme, err := d.get(colorSchemeKey)
	if err == nil {
		if modeFromText(scheme) == types.Dark {
			return types.Dark
		}
		if strings.Contains(strings.ToLower(scheme), preferLightSetting) {
			return types.Light
		}
	}

	theme, err := d.get(gtkThemeKey)
	if err != nil {
		return types.Light
	}
	return modeFromText(theme)
}

// get reads a single key from the GNOME interface schema.
func (d *GSettingsDetector) get(key string) (string, error) {
	output, err := d.cmdExecutor(gsettingsCommand, "get", gnomeInterface, key)
	if err != nil {
		d.logger.Debug("gsettings query failed",
			zap.String("schema", gnomeInterface), zap.String("key", key), zap.Error(err))
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}

// IsAvailable checks if gsettings is available on the system.
func (d *GSettingsDetector) IsAvailable() bool {
	_, err := d.lookPath(gsettingsCommand)
	return err == nil
}

// desktopDetector returns d, or a FallbackDetector when gsettings is not installed
// so that no detection spawns a command that cannot exist.
func desktopDetector(d *GSettingsDetector) interfaces.Detector {
	if !d.IsAvailable() {
		d.logger.Debug("gsettings not found, assuming light")
		return NewFallbackDetector()
	}
	return d
}
