package detect

import (
	"os/exec"
	"strings"

	"github.com/Veraticus/dark-light/pkg/types"
)

// darkMarker is matched case-insensitively against preference values and theme names.
const darkMarker = "dark"

// defaultCmdExecutor executes a command and returns its output.
func defaultCmdExecutor(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.Output()
}

// modeFromText returns Dark if text contains the dark marker in any letter case.
func modeFromText(text string) types.Mode {
	if strings.Contains(strings.ToLower(text), darkMarker) {
		return types.Dark
	}
	return types.Light
}
