package detect

import (
	"fmt"
	"testing"

	"github.com/Veraticus/dark-light/pkg/types"
)

func TestNewDefaultsDetector(t *testing.T) {
	detector := NewDefaultsDetector()

	if detector == nil {
		t.Fatal("NewDefaultsDetector returned nil")
	}

	if detector.cmdExecutor == nil {
		t.Error("cmdExecutor should not be nil")
	}

	if detector.logger == nil {
		t.Error("logger should not be nil")
	}
}

func TestDefaultsDetector_Detect(t *testing.T) {
	tests := []struct {
		name       string
		mockOutput []byte
		mockError  error
		expected   types.Mode
	}{
		{
			name:       "Dark style",
			mockOutput: []byte("Dark\n"),
			expected:   types.Dark,
		},
		{
			name:       "Lower case dark",
			mockOutput: []byte("dark"),
			expected:   types.Dark,
		},
		{
			name:       "Upper case dark",
			mockOutput: []byte("DARK\n"),
			expected:   types.Dark,
		},
		{
			name:       "Some other style",
			mockOutput: []byte("Light\n"),
			expected:   types.Light,
		},
		{
			name:      "Preference absent",
			mockError: fmt.Errorf("The domain/default pair of (kCFPreferencesAnyApplication, AppleInterfaceStyle) does not exist"),
			expected:  types.Light,
		},
		{
			name:      "defaults not found",
			mockError: fmt.Errorf("exec: \"defaults\": executable file not found in $PATH"),
			expected:  types.Light,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewDefaultsDetector()
			detector.cmdExecutor = func(name string, args ...string) ([]byte, error) {
				if name != "defaults" {
					t.Errorf("unexpected command: %s", name)
				}
				if len(args) != 3 || args[0] != "read" || args[1] != "-g" || args[2] != "AppleInterfaceStyle" {
					t.Errorf("unexpected args: %v", args)
				}
				return tt.mockOutput, tt.mockError
			}

			if got := detector.Detect(); got != tt.expected {
				t.Errorf("Detect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDefaultsDetector_Idempotent(t *testing.T) {
	calls := 0
	detector := NewDefaultsDetector()
	detector.cmdExecutor = func(name string, args ...string) ([]byte, error) {
		calls++
		return []byte("Dark\n"), nil
	}

	first := detector.Detect()
	second := detector.Detect()

	if first != second {
		t.Errorf("Detect() not idempotent: %v then %v", first, second)
	}

	// Every call re-queries the OS
	if calls != 2 {
		t.Errorf("expected 2 defaults calls, got %d", calls)
	}
}

func TestDefaultsDetector_SetLoggerNil(t *testing.T) {
	detector := NewDefaultsDetector()
	detector.SetLogger(nil)
	detector.cmdExecutor = func(name string, args ...string) ([]byte, error) {
		return nil, fmt.Errorf("boom")
	}

	if got := detector.Detect(); got != types.Light {
		t.Errorf("Detect() = %v, want light", got)
	}
}
