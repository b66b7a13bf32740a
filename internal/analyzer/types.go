package analyzer

// blockTypes is the recognized top-level key vocabulary in priority order.
// Classification checks keys in sequence and the first match wins, so this
// must stay an ordered list rather than a map.
var blockTypes = []string{
	"question",
	"code",
	"objects",
	"features",
	"auto terms",
	"template",
	"attachment",
	"attachments",
	"table",
	"translations",
	"include",
	"default screen parts",
	"metadata",
	"modules",
	"imports",
	"sections",
	"interview help",
	"def",
	"default validation messages",
	"machine learning storage",
	"initial",
	"event",
	"comment",
	"variable name",
	"data",
	"data from code",
	"reset",
	"on change",
	"image sets",
	"images",
	"order",
}

var knownTypes = func() map[string]bool {
	m := make(map[string]bool, len(blockTypes))
	for _, t := range blockTypes {
		m[t] = true
	}
	return m
}()

// Display languages for block content.
const (
	LangYAML     = "yaml"
	LangPython   = "python"
	LangMarkdown = "markdown"
)

var blockLanguages = map[string]string{
	"code": LangPython,
	"def":  LangMarkdown,
}

// languageFor returns the display language for a block type.
func languageFor(blockType string) string {
	if lang, ok := blockLanguages[blockType]; ok {
		return lang
	}
	return LangYAML
}

// BlockAnalysis is the durable per-block output of Analyze.
type BlockAnalysis struct {
	ID          string   `json:"id"` // "{type}-{position}", unique per document
	Type        string   `json:"type"`
	Label       string   `json:"label,omitempty"`
	Language    string   `json:"language"`
	Position    int      `json:"position"`
	OrderItems  []string `json:"order_items,omitempty"` // set only on ordering blocks
	IsMandatory bool     `json:"is_mandatory"`
}

// VariableInfo is one inferred document variable.
type VariableInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FieldSuggestion is a refactor suggestion derived from the first declared
// field of a question-like block.
type FieldSuggestion struct {
	Field      string `json:"field"`
	QuestionID string `json:"question_id"`
	IsList     bool   `json:"is_list"`
	ListName   string `json:"list_name,omitempty"`
	Suggestion string `json:"suggestion"`
}
