package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// run executes git in dir and returns its trimmed output.
func run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %w (command: git %s, output: %s)",
			ErrCommand, err, strings.Join(args, " "), strings.TrimSpace(string(output)))
	}
	return strings.TrimSpace(string(output)), nil
}
