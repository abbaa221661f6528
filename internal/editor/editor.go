// Package editor launches the configured editor command on a project path.
package editor

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Seam for tests; Launch never blocks on the editor process.
var startProcess = func(cmd *exec.Cmd) error { return cmd.Start() }

// Launch starts the editor command with path as its sole argument and
// returns once the process has been spawned.
//
// A command containing spaces is treated as a compound invocation (for
// example "open -a 'Visual Studio Code'" on macOS) and run through the
// shell with the path quoted.
func Launch(command, path string) error {
	command = strings.TrimSpace(command)
	if command == "" {
		return errors.New("no editor command configured")
	}
	if err := startProcess(buildCommand(command, path)); err != nil {
		return fmt.Errorf("launch %q: %w", command, err)
	}
	return nil
}

func buildCommand(command, path string) *exec.Cmd {
	if strings.Contains(command, " ") {
		return exec.Command("sh", "-c", command+" "+shellQuote(path))
	}
	return exec.Command(command, path)
}

// shellQuote wraps s in single quotes, escaping any internal single quotes.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
