// Abstractions for running subprocesses and capturing their output.

package process

import (
	"fmt"
	"os/exec"
	"strings"
)

// Run the program with the arguments and return its stdout.  If the program could not be run, or
// exited with a nonzero code, return an error carrying the tail of its stderr; stdout is then
// empty.  The caller decides whether failure is fatal - for the report readers it never is.

func Output(programPath string, arguments ...string) (string, error) {
	cmd := exec.Command(programPath, arguments...)
	var stdout strings.Builder
	var stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("While running %s: %w%s", programPath, err, stderrTail(stderr.String()))
	}
	return stdout.String(), nil
}

// At most the last few lines of stderr, enough to say why the command failed without flooding the
// terminal the table is about to be printed on.

const tailLines = 5

func stderrTail(s string) string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > tailLines {
		lines = lines[len(lines)-tailLines:]
	}
	return "\n" + strings.Join(lines, "\n")
}
