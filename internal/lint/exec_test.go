package lint

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeScript creates an executable shell script for driving ExecLinter.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not available on windows")
	}
	path := filepath.Join(t.TempDir(), "checker.sh")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func TestExecLinterCollectsStdoutLines(t *testing.T) {
	script := writeScript(t, `echo "issue one"
echo ""
echo "issue two"`)

	linter := NewExecLinter(script)
	issues, err := linter.Check("question: Hello")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if len(issues) != 2 || issues[0] != "issue one" || issues[1] != "issue two" {
		t.Errorf("issues = %v, want [issue one, issue two]", issues)
	}
}

func TestExecLinterReceivesDocumentFile(t *testing.T) {
	// The checker gets the document in a temp file passed as its last
	// argument; echoing the file back proves the content round-trips.
	script := writeScript(t, `cat "$1"`)

	linter := NewExecLinter(script)
	issues, err := linter.Check("question: Ping")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if len(issues) != 1 || issues[0] != "question: Ping" {
		t.Errorf("issues = %v, want the document content", issues)
	}
}

func TestExecLinterNonZeroExitWithFindings(t *testing.T) {
	script := writeScript(t, `echo "found a problem"
exit 1`)

	linter := NewExecLinter(script)
	issues, err := linter.Check("question: Hello")
	if err != nil {
		t.Fatalf("non-zero exit with findings should not fail: %v", err)
	}
	if len(issues) != 1 || issues[0] != "found a problem" {
		t.Errorf("issues = %v", issues)
	}
}

func TestExecLinterNonZeroExitWithoutOutput(t *testing.T) {
	script := writeScript(t, `exit 2`)

	linter := NewExecLinter(script)
	if _, err := linter.Check("question: Hello"); err == nil {
		t.Error("expected an error for a silent non-zero exit")
	}
}

func TestExecLinterMissingBinary(t *testing.T) {
	linter := NewExecLinter("definitely-not-a-real-checker-binary")

	_, err := linter.Check("question: Hello")
	if err == nil {
		t.Fatal("expected an error for a missing binary")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error %q should mention the missing binary", err)
	}
}

func TestExecLinterEmptyCommand(t *testing.T) {
	linter := NewExecLinter("")

	issues, err := linter.Check("question: Hello")
	if err != nil || issues != nil {
		t.Errorf("empty command should be a no-op, got %v, %v", issues, err)
	}
}
