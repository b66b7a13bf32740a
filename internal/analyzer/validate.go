package analyzer

import "fmt"

// Validate checks document-level invariants and returns the accumulated
// issue messages. It never fails: decode errors become issues and the
// external linter's own failures are swallowed.
func (a *Analyzer) Validate(document string) []string {
	var issues []string

	if a.linter != nil {
		if extra, err := a.linter.Check(document); err == nil {
			issues = append(issues, extra...)
		}
	}

	analyses, err := a.Analyze(document)
	if err != nil {
		// A mid-document decode failure aborts the structural checks
		// that depend on full analysis.
		return append(issues, err.Error())
	}

	for _, block := range analyses {
		if !knownTypes[block.Type] {
			issues = append(issues, fmt.Sprintf("Unsupported block type %q at position %d.", block.Type, block.Position))
		}
	}

	// Segments are re-decoded independently here so that a decode failure
	// in one block cannot suppress the mandatory-count check on its
	// siblings.
	seenMandatory := false
	for position, segment := range splitBlocks(document) {
		data, err := decodeBlock(segment, position)
		if err != nil {
			derr := err.(*DecodeError)
			issues = append(issues, fmt.Sprintf("Invalid YAML block: %v", derr.Err))
			continue
		}

		payload, ok := data["interview_order"]
		if !ok {
			continue
		}
		meta, _ := payload.(map[string]any)
		if coerceBool(meta["mandatory"]) {
			if seenMandatory {
				issues = append(issues, "Only one mandatory interview_order block is allowed.")
			}
			seenMandatory = true
		}
	}

	return issues
}
