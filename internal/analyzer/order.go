package analyzer

import "strings"

// orderItemsFromCode extracts the ordered step expressions from the
// line-oriented code of an ordering block. Blank lines and comment lines are
// ignored; order and duplicates are preserved.
func orderItemsFromCode(code string) []string {
	if code == "" {
		return nil
	}

	var items []string
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		items = append(items, trimmed)
	}
	return items
}
