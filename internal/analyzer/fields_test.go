package analyzer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFirstFieldsListPattern(t *testing.T) {
	document := `question: |
  What is this child's name?
fields:
  - Name: children[i].name
    datatype: text
  - Age: children[i].age
    datatype: integer
`

	got := New().FirstFields(document)
	want := []FieldSuggestion{
		{
			Field:      "children[i].name",
			QuestionID: "question-0",
			IsList:     true,
			ListName:   "children",
			Suggestion: "children.gather()",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FirstFields mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstFieldsPlainField(t *testing.T) {
	document := "question: Name?\nfields:\n  - Name: applicant.name\n"

	got := New().FirstFields(document)
	want := []FieldSuggestion{
		{
			Field:      "applicant.name",
			QuestionID: "question-0",
			IsList:     false,
			Suggestion: "applicant.name",
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FirstFields mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstFieldsIndexLetters(t *testing.T) {
	tests := []struct {
		field  string
		isList bool
	}{
		{"children[i]", true},
		{"children[j].name", true},
		{"matrix[k]", true},
		{"items[n].detail.note", true},
		{"children[x].name", false},
		{"children[0].name", false},
		{"children[i].name.extra[j]", false},
	}

	for _, tt := range tests {
		document := "question: Q\nfields:\n  - Label: " + tt.field + "\n"
		got := New().FirstFields(document)
		if len(got) != 1 {
			t.Fatalf("field %q: expected one suggestion, got %v", tt.field, got)
		}
		if got[0].IsList != tt.isList {
			t.Errorf("field %q: is_list = %v, want %v", tt.field, got[0].IsList, tt.isList)
		}
	}
}

func TestFirstFieldsOnlyFirstFieldConsidered(t *testing.T) {
	document := `question: Q
fields:
  - Plain: applicant.name
  - Listy: children[i].name
`

	got := New().FirstFields(document)
	if len(got) != 1 {
		t.Fatalf("expected one suggestion, got %v", got)
	}
	if got[0].IsList {
		t.Error("only the first field should be considered")
	}
}

func TestFirstFieldsSkipsBlocksWithoutFields(t *testing.T) {
	document := "metadata:\n  title: Demo\n---\ncode: |\n  x = 1\n"

	if got := New().FirstFields(document); len(got) != 0 {
		t.Errorf("blocks without fields should produce nothing, got %v", got)
	}
}

func TestFirstFieldsSkipsNonStringFirstField(t *testing.T) {
	document := "question: Q\nfields:\n  - Label: 42\n  - Other: real_name\n"

	if got := New().FirstFields(document); len(got) != 0 {
		t.Errorf("block whose first field is not a string declaration should be skipped, got %v", got)
	}
}

func TestFirstFieldsSkipsMalformedSegments(t *testing.T) {
	document := "question: [broken\n---\nquestion: Q\nfields:\n  - Name: user_name\n"

	got := New().FirstFields(document)
	if len(got) != 1 {
		t.Fatalf("expected one suggestion, got %v", got)
	}
	if got[0].QuestionID != "question-1" {
		t.Errorf("question_id = %q, want question-1", got[0].QuestionID)
	}
}
