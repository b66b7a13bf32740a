package analyzer

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// listIndexRe matches a list-membership naming pattern: a dotted path,
// a bracketed single-letter index from the conventional loop-variable set,
// and an optional trailing attribute path.
var listIndexRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\[([ijkn])\](?:\.[A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)?$`)

// fieldEntry is one item of a block's declared field list, with source key
// order preserved. hasName is false when the item is not a mapping or its
// first key's value is not a string.
type fieldEntry struct {
	name     string
	hasName  bool
	datatype string
}

// fieldEntries extracts the field list of one segment. YAML mappings decode
// unordered in Go, and the field contract depends on the first declared key,
// so this goes through the yaml.Node API instead of a map. Malformed
// segments yield no entries.
func fieldEntries(segment string) []fieldEntry {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(segment), &doc); err != nil {
		return nil
	}
	if len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}

	var fields *yaml.Node
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == "fields" {
			fields = root.Content[i+1]
			break
		}
	}
	if fields == nil || fields.Kind != yaml.SequenceNode {
		return nil
	}

	entries := make([]fieldEntry, 0, len(fields.Content))
	for _, item := range fields.Content {
		entry := fieldEntry{datatype: "text"}
		if item.Kind == yaml.MappingNode && len(item.Content) >= 2 {
			if first := item.Content[1]; first.Kind == yaml.ScalarNode && first.Tag == "!!str" {
				entry.name = first.Value
				entry.hasName = true
			}
			for i := 0; i+1 < len(item.Content); i += 2 {
				if item.Content[i].Value == "datatype" {
					entry.datatype = item.Content[i+1].Value
				}
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// FirstFields proposes a canonical gather() expression for each block whose
// first declared field follows the list-indexing naming pattern. Blocks
// without fields, and first fields that are not plain string declarations,
// are skipped. Malformed segments are skipped silently.
func (a *Analyzer) FirstFields(document string) []FieldSuggestion {
	var suggestions []FieldSuggestion

	for position, segment := range splitBlocks(document) {
		entries := fieldEntries(segment)
		if len(entries) == 0 {
			continue
		}
		first := entries[0]
		if !first.hasName {
			continue
		}

		data, err := decodeBlock(segment, position)
		if err != nil {
			continue
		}
		c := classifyBlock(data, segment)

		suggestion := FieldSuggestion{
			Field:      first.name,
			QuestionID: fmt.Sprintf("%s-%d", c.Type, position),
			Suggestion: first.name,
		}
		if m := listIndexRe.FindStringSubmatch(first.name); m != nil {
			suggestion.IsList = true
			suggestion.ListName = m[1]
			suggestion.Suggestion = m[1] + ".gather()"
		}
		suggestions = append(suggestions, suggestion)
	}

	return suggestions
}
