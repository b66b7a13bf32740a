package analyzer

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeError reports a segment whose text is not valid YAML, or whose
// decoded form is not a key/value mapping.
type DecodeError struct {
	Position int
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse YAML segment at index %d: %v", e.Position, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// decodeBlock parses one segment into its key/value mapping. An empty or
// null segment normalizes to an empty mapping. The failure policy belongs to
// the caller: Analyze treats a *DecodeError as fatal, Validate reports it,
// and the inference passes skip the segment.
func decodeBlock(text string, position int) (map[string]any, error) {
	var data map[string]any
	if err := yaml.Unmarshal([]byte(text), &data); err != nil {
		return nil, &DecodeError{Position: position, Err: err}
	}
	if data == nil {
		data = map[string]any{}
	}
	return data, nil
}
