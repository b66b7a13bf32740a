package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dabuild/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate interview documents",
	Long: `Validate one or more interview YAML files against the structural rules:
every block must decode, block types must come from the recognized
vocabulary, and at most one interview_order block may be mandatory.

When a linter command is configured, its findings are included. Validation
never aborts on a malformed document; all issues are reported.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(GetConfigPath())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		a := newAnalyzer(cfg)

		valid := 0
		invalid := 0
		for _, arg := range args {
			document, err := readDocument(arg)
			if err != nil {
				return err
			}

			issues := a.Validate(document)
			if len(issues) == 0 {
				valid++
				if IsVerbose() {
					fmt.Printf("✅ %s\n", arg)
				}
				continue
			}

			invalid++
			for _, issue := range issues {
				fmt.Printf("❌ %s: %s\n", arg, issue)
			}
		}

		fmt.Printf("\nValidation complete: %d valid, %d invalid\n", valid, invalid)

		if invalid > 0 {
			return fmt.Errorf("found %d invalid document(s)", invalid)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
