package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const interviewOrderLabel = "Interview Order"

// orderCommentRe matches banner comments marking an ordering code block,
// e.g. "### Interview Order ###". Hash runs of any length on either side.
var orderCommentRe = regexp.MustCompile(`(?i)^#+\s*interview\s+order\s*#+$`)

// classification is the classifier's per-block result.
type classification struct {
	Type        string
	Label       string
	OrderItems  []string
	IsMandatory bool
}

// classifyBlock determines a block's type, display label, order items, and
// mandatory flag from its decoded mapping and raw text.
func classifyBlock(data map[string]any, raw string) classification {
	c := classification{Type: guessBlockType(data)}
	c.Label = labelFor(c.Type, data)

	if payload, ok := data["interview_order"].(map[string]any); ok {
		code, _ := payload["code"].(string)
		c.OrderItems = orderItemsFromCode(code)
		c.IsMandatory = coerceBool(payload["mandatory"])
	} else {
		c.IsMandatory = coerceBool(data["mandatory"])
	}

	// Plain code blocks named or commented as the interview order get the
	// ordering label without a type change. The substring match on the id
	// is deliberately broad and can false-positive on identifiers that
	// merely contain "main_order".
	if c.Type == "code" && c.Label != interviewOrderLabel && looksLikeOrderBlock(data, raw) {
		c.Label = interviewOrderLabel
	}

	return c
}

// guessBlockType resolves the block type from the first vocabulary key
// present in the mapping. Blocks matching nothing default to question when a
// question key exists (redundant given vocabulary order, kept as an explicit
// fallback), else code.
func guessBlockType(data map[string]any) string {
	for _, candidate := range blockTypes {
		if _, ok := data[candidate]; ok {
			return candidate
		}
	}
	if _, ok := data["question"]; ok {
		return "question"
	}
	return "code"
}

// labelFor derives the display label for a block. Labels are always set:
// missing source fields produce a generic placeholder, and types without a
// dedicated rule use their own name in title case.
func labelFor(blockType string, data map[string]any) string {
	if _, ok := data["interview_order"].(map[string]any); ok {
		return interviewOrderLabel
	}

	switch blockType {
	case "metadata":
		if meta, ok := data["metadata"].(map[string]any); ok {
			if title := scalarString(meta["title"]); title != "" {
				return title
			}
		}
		return "Metadata"
	case "question":
		if q, ok := data["question"].(string); ok && q != "" {
			return firstLine(q)
		}
		return "Question"
	case "code":
		if code, ok := data["code"].(string); ok && code != "" {
			return truncateRunes(firstLine(code), 24)
		}
		return "Code"
	case "attachment":
		if payload, ok := data["attachment"].(map[string]any); ok {
			if name := scalarString(payload["name"]); name != "" {
				return name
			}
		}
		return "Attachment"
	case "event":
		if ev := scalarString(data["event"]); ev != "" {
			return ev
		}
		return "Event"
	case "objects":
		return "Objects"
	}

	return cases.Title(language.English).String(blockType)
}

// looksLikeOrderBlock applies the id/comment heuristics for relabeling a
// code block as the interview order.
func looksLikeOrderBlock(data map[string]any, raw string) bool {
	if id, ok := data["id"].(string); ok {
		lower := strings.ToLower(id)
		if strings.Contains(lower, "interview_order") || strings.Contains(lower, "main_order") {
			return true
		}
	}
	for _, line := range strings.Split(raw, "\n") {
		if orderCommentRe.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// coerceBool applies truthy coercion: boolean passthrough, the usual
// affirmative strings, and non-zero numbers. Everything else is false.
func coerceBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "1", "on":
			return true
		}
		return false
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}

// scalarString renders a scalar value for display. Nil, empty, and
// structured values are treated as absent.
func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int, int64, uint64, float64:
		return fmt.Sprint(v)
	}
	return ""
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
