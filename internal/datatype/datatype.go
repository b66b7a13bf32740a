// Package datatype defines the semantic variable type constants produced by
// inference.
package datatype

// Semantic type constants for consistent type representation.
const (
	Str      = "str"
	Int      = "int"
	Float    = "float"
	Bool     = "bool"
	List     = "list"
	Dict     = "dict"
	Tuple    = "tuple"
	Set      = "set"
	None     = "none"
	Date     = "date"
	Time     = "time"
	Datetime = "datetime"

	// Any is the fallback when no more specific type can be inferred.
	Any = "any"
)

// widgetTypes maps input-widget datatype names from interview field
// declarations to semantic types.
var widgetTypes = map[string]string{
	"text":     Str,
	"area":     Str,
	"password": Str,
	"email":    Str,
	"file":     Str,

	"date":     Date,
	"datetime": Datetime,
	"time":     Time,

	"integer": Int,

	"number":   Float,
	"currency": Float,
	"range":    Float,

	"boolean": Bool,
	"yesno":   Bool,
	"noyes":   Bool,

	"object": Dict,

	"choices":     List,
	"multiselect": List,
	"combobox":    List,
	"files":       List,
}

// FromWidget returns the semantic type for a field widget datatype.
// Unrecognized widgets (dropdown included) fall back to Any.
func FromWidget(widget string) string {
	if typ, ok := widgetTypes[widget]; ok {
		return typ
	}
	return Any
}
