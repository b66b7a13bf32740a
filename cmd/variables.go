package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dabuild/internal/config"
)

var variablesJSON bool

var variablesCmd = &cobra.Command{
	Use:   "variables <file>",
	Short: "List the variables an interview defines",
	Long: `Infer the variables an interview document defines, with a best-effort
type for each. Assignments in code blocks are scanned first; declared field
lists override them on name collisions. Malformed blocks are skipped.`,
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

		variables := newAnalyzer(cfg).Variables(document)

		if variablesJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(variables)
		}

		for _, v := range variables {
			fmt.Printf("%s: %s\n", v.Name, v.Type)
		}
		fmt.Printf("\n%d variable(s)\n", len(variables))
		return nil
	},
}

func init() {
	variablesCmd.Flags().BoolVar(&variablesJSON, "json", false, "output variables as JSON")
	rootCmd.AddCommand(variablesCmd)
}
