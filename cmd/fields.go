package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dabuild/internal/config"
)

var fieldsJSON bool

var fieldsCmd = &cobra.Command{
	Use:   "fields <file>",
	Short: "Suggest gather() refactors for first fields",
	Long: `Inspect the first declared field of every question-like block. Fields
named with a list-indexing pattern (for example "children[i].name") get a
canonical gather() suggestion for the underlying list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(GetConfigPath())
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		document, err := readDocument(args[0])
		if err != nil {
			return err
		}

		suggestions := newAnalyzer(cfg).FirstFields(document)

		if fieldsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(suggestions)
		}

		for _, s := range suggestions {
			if s.IsList {
				fmt.Printf("%s: %s → %s\n", s.QuestionID, s.Field, s.Suggestion)
			} else if IsVerbose() {
				fmt.Printf("%s: %s (not a list field)\n", s.QuestionID, s.Field)
			}
		}
		return nil
	},
}

func init() {
	fieldsCmd.Flags().BoolVar(&fieldsJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(fieldsCmd)
}
