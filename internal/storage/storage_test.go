package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty defaults", "", "untitled.yml"},
		{"whitespace defaults", "   ", "untitled.yml"},
		{"plain name gets suffix", "intake", "intake.yml"},
		{"yml suffix kept", "intake.yml", "intake.yml"},
		{"yaml suffix kept", "intake.YAML", "intake.YAML"},
		{"directory segments stripped", "../../etc/passwd", "passwd.yml"},
		{"unsafe characters replaced", "my interview (v2).yml", "my_interview_v2_.yml"},
		{"dot dot alone", "..", "untitled.yml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.expected {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSaveCreatesRootAndWrites(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "saves")
	store := New(root)

	result, err := store.Save("question: Hello", "demo")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if result.DocumentName != "demo.yml" {
		t.Errorf("document name = %q, want demo.yml", result.DocumentName)
	}
	if result.BytesWritten != len("question: Hello") {
		t.Errorf("bytes written = %d, want %d", result.BytesWritten, len("question: Hello"))
	}

	data, err := os.ReadFile(result.Path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "question: Hello" {
		t.Errorf("saved content = %q", string(data))
	}
}

func TestSaveDerivesUniqueNames(t *testing.T) {
	store := New(t.TempDir())

	first, err := store.Save("a: 1", "doc.yml")
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	second, err := store.Save("b: 2", "doc.yml")
	if err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	third, err := store.Save("c: 3", "doc.yml")
	if err != nil {
		t.Fatalf("third save failed: %v", err)
	}

	if first.DocumentName != "doc.yml" {
		t.Errorf("first name = %q", first.DocumentName)
	}
	if second.DocumentName != "doc-1.yml" {
		t.Errorf("second name = %q, want doc-1.yml", second.DocumentName)
	}
	if third.DocumentName != "doc-2.yml" {
		t.Errorf("third name = %q, want doc-2.yml", third.DocumentName)
	}
}

func TestSaveEmptyContentAllowed(t *testing.T) {
	store := New(t.TempDir())

	result, err := store.Save("", "")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if result.DocumentName != "untitled.yml" {
		t.Errorf("document name = %q, want untitled.yml", result.DocumentName)
	}
	if result.BytesWritten != 0 {
		t.Errorf("bytes written = %d, want 0", result.BytesWritten)
	}
}
