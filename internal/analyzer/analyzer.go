// Package analyzer implements structural analysis of docassemble-style
// interview documents: multi-section YAML split on `---` lines, with
// per-block classification, ordering extraction, validation, and variable
// inference.
package analyzer

import "fmt"

// Linter is an optional external document checker. Implementations return
// one message per issue found. A failing or missing linter never affects the
// analyzer's own checks.
type Linter interface {
	Check(document string) ([]string, error)
}

// Analyzer performs document analysis. The zero value is usable; New applies
// options. Analyzer holds no per-call state, so a single value may be shared
// across goroutines.
type Analyzer struct {
	linter Linter
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLinter attaches an external linter whose findings are appended to
// Validate results.
func WithLinter(l Linter) Option {
	return func(a *Analyzer) { a.linter = l }
}

// New creates an Analyzer with the given options.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze splits the document and classifies every block. It fails with a
// *DecodeError as soon as any segment is not valid YAML; callers that need
// partial results use Validate, Variables, or FirstFields instead.
func (a *Analyzer) Analyze(document string) ([]BlockAnalysis, error) {
	segments := splitBlocks(document)
	analyses := make([]BlockAnalysis, 0, len(segments))

	for position, segment := range segments {
		data, err := decodeBlock(segment, position)
		if err != nil {
			return nil, err
		}

		c := classifyBlock(data, segment)
		analyses = append(analyses, BlockAnalysis{
			ID:          fmt.Sprintf("%s-%d", c.Type, position),
			Type:        c.Type,
			Label:       c.Label,
			Language:    languageFor(c.Type),
			Position:    position,
			OrderItems:  c.OrderItems,
			IsMandatory: c.IsMandatory,
		})
	}

	return analyses, nil
}
