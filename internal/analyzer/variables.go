package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"dabuild/internal/datatype"
)

var (
	// assignmentRe matches a simple Python assignment target: a dotted
	// identifier path followed by a single equals sign.
	assignmentRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)\s*=\s*(.+)$`)

	intLiteralRe   = regexp.MustCompile(`^-?\d+$`)
	floatLiteralRe = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// Variables infers the set of variables the document defines, with a
// best-effort type for each. Two passes run over all blocks: assignments in
// code blocks first, then declared field lists, which win on name
// collisions. Malformed segments and statements are skipped silently. The
// result is sorted by name.
func (a *Analyzer) Variables(document string) []VariableInfo {
	segments := splitBlocks(document)
	vars := make(map[string]string)

	for position, segment := range segments {
		data, err := decodeBlock(segment, position)
		if err != nil {
			continue
		}
		code, ok := data["code"].(string)
		if !ok {
			continue
		}
		scanAssignments(code, vars)
	}

	for _, segment := range segments {
		for _, field := range fieldEntries(segment) {
			if !field.hasName {
				continue
			}
			vars[field.name] = datatype.FromWidget(field.datatype)
		}
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]VariableInfo, 0, len(names))
	for _, name := range names {
		result = append(result, VariableInfo{Name: name, Type: vars[name]})
	}
	return result
}

// scanAssignments records one variable per simple assignment statement in
// the code blob. Lines that are not simple assignments are skipped.
func scanAssignments(code string, vars map[string]string) {
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		m := assignmentRe.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		rhs := strings.TrimSpace(m[2])
		if strings.HasPrefix(rhs, "=") {
			// Equality comparison, not an assignment.
			continue
		}
		vars[m[1]] = literalType(rhs)
	}
}

// literalType infers a coarse semantic type from the literal shape of an
// expression. Anything syntactically complex maps to the fallback type.
func literalType(expr string) string {
	switch {
	case expr == "True" || expr == "False":
		return datatype.Bool
	case expr == "None":
		return datatype.None
	case intLiteralRe.MatchString(expr):
		return datatype.Int
	case floatLiteralRe.MatchString(expr):
		return datatype.Float
	}

	if len(expr) >= 2 {
		switch {
		case strings.HasPrefix(expr, `"`) && strings.HasSuffix(expr, `"`),
			strings.HasPrefix(expr, "'") && strings.HasSuffix(expr, "'"):
			return datatype.Str
		case strings.HasPrefix(expr, "[") && strings.HasSuffix(expr, "]"):
			return datatype.List
		case strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")"):
			return datatype.Tuple
		case strings.HasPrefix(expr, "{") && strings.HasSuffix(expr, "}"):
			if expr == "{}" || strings.Contains(expr, ":") {
				return datatype.Dict
			}
			return datatype.Set
		}
	}

	return datatype.Any
}
