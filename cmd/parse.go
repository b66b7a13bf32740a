package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dabuild/internal/config"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse an interview document into classified blocks",
	Long: `Parse a docassemble interview YAML file and print one line per block
with its position, type, language, and label. Use "-" to read from stdin.

Parsing fails on the first block that is not valid YAML; use the validate
command for a best-effort report instead.`,
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

		blocks, err := newAnalyzer(cfg).Analyze(document)
		if err != nil {
			return err
		}

		if parseJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(blocks)
		}

		for _, block := range blocks {
			flags := ""
			if block.IsMandatory {
				flags = " [mandatory]"
			}
			fmt.Printf("%-4d %-28s %-10s %s%s\n", block.Position, block.Type, block.Language, block.Label, flags)
			if IsVerbose() && len(block.OrderItems) > 0 {
				fmt.Printf("     order: %s\n", strings.Join(block.OrderItems, ", "))
			}
		}
		fmt.Printf("\n%d block(s)\n", len(blocks))
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output block analyses as JSON")
	rootCmd.AddCommand(parseCmd)
}
