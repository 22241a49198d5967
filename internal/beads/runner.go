package beads

import (
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes the bd CLI. Implementations include the real binary and
// test fakes. Run returns the command output on success and an error
// describing the failure otherwise; callers decide how to surface either.
type Runner interface {
	Run(args ...string) (string, error)
}

// ExecRunner runs a real bd binary via os/exec.
type ExecRunner struct {
	// Bin is the binary to execute. Empty means "bd" from PATH.
	Bin string
}

// Run executes the binary and returns its combined output, trimmed. On
// failure the output (often bd's own error text) is folded into the error.
func (e ExecRunner) Run(args ...string) (string, error) {
	bin := e.Bin
	if bin == "" {
		bin = "bd"
	}

	out, err := exec.Command(bin, args...).CombinedOutput()
	if err != nil {
		if text := strings.TrimSpace(string(out)); text != "" {
			return "", fmt.Errorf("%w: %s", err, text)
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
