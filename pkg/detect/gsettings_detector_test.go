package detect

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Veraticus/dark-light/pkg/types"
)

type gsettingsResponse struct {
	output string
	err    error
}

func fakeGSettings(t *testing.T, responses map[string]gsettingsResponse) func(string, ...string) ([]byte, error) {
	t.Helper()
	return func(name string, args ...string) ([]byte, error) {
		if name != "gsettings" {
			return nil, fmt.Errorf("unexpected command %q", name)
		}
		if len(args) != 3 || args[0] != "get" || args[1] != "org.gnome.desktop.interface" {
			return nil, fmt.Errorf("unexpected args %v", args)
		}
		resp, ok := responses[args[2]]
		if !ok {
			return nil, errors.New("No such key")
		}
		return []byte(resp.output), resp.err
	}
}

func TestGSettingsDetector_Detect(t *testing.T) {
	notFound := errors.New(`exec: "gsettings": executable file not found in $PATH`)

	tests := []struct {
		name      string
		responses map[string]gsettingsResponse
		expected  types.Mode
	}{
		{
			name: "prefer-dark color scheme",
			responses: map[string]gsettingsResponse{
				"color-scheme": {output: "'prefer-dark'\n"},
			},
			expected: types.Dark,
		},
		{
			name: "upper case marker",
			responses: map[string]gsettingsResponse{
				"color-scheme": {output: "'PREFER-DARK'\n"},
			},
			expected: types.Dark,
		},
		{
			name: "prefer-light wins over dark gtk theme",
			responses: map[string]gsettingsResponse{
				"color-scheme": {output: "'prefer-light'\n"},
				"gtk-theme":    {output: "'Adwaita-dark'\n"},
			},
			expected: types.Light,
		},
		{
			name: "default scheme falls through to gtk theme",
			responses: map[string]gsettingsResponse{
				"color-scheme": {output: "'default'\n"},
				"gtk-theme":    {output: "'Adwaita-dark'\n"},
			},
			expected: types.Dark,
		},
		{
			name: "default scheme and light gtk theme",
			responses: map[string]gsettingsResponse{
				"color-scheme": {output: "'default'\n"},
				"gtk-theme":    {output: "'Adwaita'\n"},
			},
			expected: types.Light,
		},
		{
			name: "older GNOME without color-scheme",
			responses: map[string]gsettingsResponse{
				"gtk-theme": {output: "'Yaru-Dark'\n"},
			},
			expected: types.Dark,
		},
		{
			name: "gsettings missing",
			responses: map[string]gsettingsResponse{
				"color-scheme": {err: notFound},
				"gtk-theme":    {err: notFound},
			},
			expected: types.Light,
		},
		{
			name:      "no keys at all",
			responses: map[string]gsettingsResponse{},
			expected:  types.Light,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewGSettingsDetector()
			detector.cmdExecutor = fakeGSettings(t, tt.responses)

			assert.Equal(t, tt.expected, detector.Detect())
		})
	}
}

func TestGSettingsDetector_LogsSwallowedErrors(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	detector := NewGSettingsDetector()
	detector.SetLogger(zap.New(core))
	detector.cmdExecutor = func(name string, args ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	}

	assert.Equal(t, types.Light, detector.Detect())
	assert.Equal(t, 2, logs.FilterMessage("gsettings query failed").Len())
}

func TestGSettingsDetector_IsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		lookErr  error
		expected bool
	}{
		{name: "gsettings available", expected: true},
		{name: "gsettings not available", lookErr: errors.New(`exec: "gsettings": executable file not found in $PATH`), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewGSettingsDetector()
			detector.lookPath = func(file string) (string, error) {
				if file != "gsettings" {
					t.Errorf("unexpected lookup: %s", file)
				}
				if tt.lookErr != nil {
					return "", tt.lookErr
				}
				return "/usr/bin/gsettings", nil
			}

			assert.Equal(t, tt.expected, detector.IsAvailable())
		})
	}
}

func TestDesktopDetector(t *testing.T) {
	available := NewGSettingsDetector()
	available.lookPath = func(string) (string, error) { return "/usr/bin/gsettings", nil }
	assert.Same(t, available, desktopDetector(available))

	missing := NewGSettingsDetector()
	missing.lookPath = func(string) (string, error) { return "", errors.New("not found") }
	missing.cmdExecutor = func(string, ...string) ([]byte, error) {
		t.Error("no subprocess should run when gsettings is missing")
		return nil, errors.New("not found")
	}

	fallback := desktopDetector(missing)
	assert.IsType(t, &FallbackDetector{}, fallback)
	assert.Equal(t, types.Light, fallback.Detect())
}
