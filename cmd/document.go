package cmd

import (
	"fmt"
	"io"
	"os"

	"dabuild/internal/analyzer"
	"dabuild/internal/config"
	"dabuild/internal/lint"
)

// readDocument loads an interview document from a file path, or from stdin
// when the argument is "-".
func readDocument(arg string) (string, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", arg, err)
	}
	return string(data), nil
}

// newAnalyzer builds the analyzer from configuration, wiring the external
// linter when one is configured.
func newAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	var opts []analyzer.Option
	if cfg.Linter.Command != "" {
		opts = append(opts, analyzer.WithLinter(lint.NewExecLinter(cfg.Linter.Command, cfg.Linter.Args...)))
	}
	return analyzer.New(opts...)
}
