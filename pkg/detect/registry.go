package detect

import (
	"github.com/Veraticus/dark-light/pkg/types"
)

const (
	// PersonalizeKeyPath is relative to HKEY_CURRENT_USER.
	PersonalizeKeyPath = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`
	// AppsUseLightThemeValue is 0 for dark and 1 for light.
	AppsUseLightThemeValue = "AppsUseLightTheme"
)

// modeFromRegistryValue maps AppsUseLightTheme to a Mode.
// A read error (older Windows without the key or value) is Light.
func modeFromRegistryValue(value uint64, err error) types.Mode {
	if err != nil {
		return types.Light
	}
	if value == 0 {
		return types.Dark
	}
	return types.Light
}
