package analyzer

import "strings"

// splitBlocks partitions raw document text into its non-empty segments.
// A line whose trimmed content is exactly "---" terminates the current
// segment. Empty segments (consecutive, leading, or trailing separators)
// are dropped rather than emitted.
func splitBlocks(document string) []string {
	cleaned := strings.TrimSpace(document)
	if cleaned == "" {
		return nil
	}

	var parts []string
	var buffer []string

	flush := func() {
		if part := strings.TrimSpace(strings.Join(buffer, "\n")); part != "" {
			parts = append(parts, part)
		}
		buffer = buffer[:0]
	}

	for _, line := range strings.Split(cleaned, "\n") {
		if strings.TrimSpace(line) == "---" {
			flush()
			continue
		}
		buffer = append(buffer, line)
	}
	flush()

	return parts
}
