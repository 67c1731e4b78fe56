// Package detect reads the OS dark appearance preference.
//
// Exactly one platform strategy is compiled in per target:
//   - RegistryDetector on Windows (HKCU Personalize\AppsUseLightTheme)
//   - DefaultsDetector on macOS (defaults read -g AppleInterfaceStyle)
//   - GSettingsDetector on Linux (gsettings org.gnome.desktop.interface)
//   - FallbackDetector everywhere else
//
// Detection never fails. Anything that cannot be determined is Light.
package detect

import (
	"github.com/Veraticus/dark-light/pkg/interfaces"
	"github.com/Veraticus/dark-light/pkg/types"
)

// New creates the platform-appropriate detector.
func New() interfaces.Detector {
	return newPlatformDetector()
}

// Detect queries the OS once with the platform detector.
func Detect() types.Mode {
	return New().Detect()
}
