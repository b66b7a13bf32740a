// Package lint integrates optional external document checkers.
package lint

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ExecLinter runs an external checker binary against a document. The
// document is written to a temporary file and the file path is appended to
// the configured arguments. Each non-blank stdout line becomes one issue.
type ExecLinter struct {
	command string
	args    []string
}

// NewExecLinter creates a linter for the given command and base arguments.
func NewExecLinter(command string, args ...string) *ExecLinter {
	return &ExecLinter{command: command, args: args}
}

// Check runs the checker and returns its reported issues. Errors are
// returned for the caller to swallow; checkers that exit non-zero after
// printing findings still yield those findings.
func (l *ExecLinter) Check(document string) ([]string, error) {
	if l.command == "" {
		return nil, nil
	}
	if _, err := exec.LookPath(l.command); err != nil {
		return nil, fmt.Errorf("linter binary not found: %w", err)
	}

	tmp, err := os.CreateTemp("", "dabuild-lint-*.yml")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(document); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp file: %w", err)
	}

	args := append(append([]string{}, l.args...), tmp.Name())
	cmd := exec.Command(l.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// Checkers conventionally exit non-zero when they find
		// problems; only treat the run as failed when nothing was
		// reported.
		if _, ok := err.(*exec.ExitError); !ok || stdout.Len() == 0 {
			return nil, fmt.Errorf("running %s: %w (stderr: %s)", l.command, err, strings.TrimSpace(stderr.String()))
		}
	}

	var issues []string
	for _, line := range strings.Split(stdout.String(), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			issues = append(issues, trimmed)
		}
	}
	return issues, nil
}
