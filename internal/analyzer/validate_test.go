package analyzer

import (
	"errors"
	"strings"
	"testing"
)

type stubLinter struct {
	issues []string
	err    error
	calls  int
}

func (s *stubLinter) Check(document string) ([]string, error) {
	s.calls++
	return s.issues, s.err
}

func TestValidateEmptyDocument(t *testing.T) {
	if issues := New().Validate(""); len(issues) != 0 {
		t.Errorf("empty document should be valid, got %v", issues)
	}
}

func TestValidateCleanDocument(t *testing.T) {
	if issues := New().Validate(sampleDocument); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestValidateDuplicateMandatoryOrder(t *testing.T) {
	document := `interview_order:
  mandatory: true
  code: |
    intro
---
interview_order:
  mandatory: true
  code: |
    other
`

	issues := New().Validate(document)

	count := 0
	for _, issue := range issues {
		if issue == "Only one mandatory interview_order block is allowed." {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one duplicate-mandatory issue, got %d (issues: %v)", count, issues)
	}
}

func TestValidateThreeMandatoryOrders(t *testing.T) {
	block := "interview_order:\n  mandatory: true\n  code: |\n    x\n"
	document := block + "---\n" + block + "---\n" + block

	issues := New().Validate(document)

	count := 0
	for _, issue := range issues {
		if issue == "Only one mandatory interview_order block is allowed." {
			count++
		}
	}
	// Second and subsequent occurrences each report.
	if count != 2 {
		t.Errorf("expected two duplicate-mandatory issues, got %d", count)
	}
}

func TestValidateNonMandatoryOrdersAllowed(t *testing.T) {
	document := `interview_order:
  code: |
    intro
---
interview_order:
  mandatory: false
  code: |
    other
`
	if issues := New().Validate(document); len(issues) != 0 {
		t.Errorf("non-mandatory ordering blocks should pass, got %v", issues)
	}
}

func TestValidateDecodeFailureReportedOnce(t *testing.T) {
	document := "question: fine\n---\nquestion: [unclosed\n---\nquestion: also fine\n"

	issues := New().Validate(document)

	if len(issues) != 1 {
		t.Fatalf("expected exactly one issue, got %v", issues)
	}
	if !strings.Contains(issues[0], "segment at index 1") {
		t.Errorf("issue %q does not name the failing segment", issues[0])
	}
}

func TestValidateNeverReturnsError(t *testing.T) {
	// Validate has no error return by design; malformed input still
	// produces a message list.
	documents := []string{"", ":\n:::", "question: [a", sampleDocument}
	a := New()
	for _, document := range documents {
		_ = a.Validate(document)
	}
}

func TestValidateExternalLinterContributes(t *testing.T) {
	linter := &stubLinter{issues: []string{"line 3: unknown modifier"}}
	a := New(WithLinter(linter))

	issues := a.Validate(sampleDocument)

	if linter.calls != 1 {
		t.Fatalf("linter called %d times, want 1", linter.calls)
	}
	if len(issues) != 1 || issues[0] != "line 3: unknown modifier" {
		t.Errorf("linter issues not included: %v", issues)
	}
}

func TestValidateLinterFailureSwallowed(t *testing.T) {
	linter := &stubLinter{err: errors.New("checker exploded")}
	a := New(WithLinter(linter))

	issues := a.Validate(sampleDocument)

	if len(issues) != 0 {
		t.Errorf("linter failure must not surface, got %v", issues)
	}
}

func TestValidateLinterIssuesPrecedeStructural(t *testing.T) {
	linter := &stubLinter{issues: []string{"external issue"}}
	a := New(WithLinter(linter))

	document := "question: [unclosed"
	issues := a.Validate(document)

	if len(issues) != 2 {
		t.Fatalf("expected two issues, got %v", issues)
	}
	if issues[0] != "external issue" {
		t.Errorf("external linter issues should come first, got %v", issues)
	}
}
