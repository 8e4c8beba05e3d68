package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/404wolf/mdvalidate/internal/report"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command. Grounded on the teacher's
// cmd/mdschema/commands/schema.go: same output-file-or-stdout shape,
// reflecting the Report wire format instead of the old YAML Schema DSL.
func NewSchemaCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Generate a JSON Schema for the `check --format json` report",
		Long: `Generate a JSON Schema describing the wire format mdvalidate check emits
with --format json, for editor autocomplete/validation of consumers that
parse it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := report.Generate()
			if err != nil {
				return fmt.Errorf("generating schema: %w", err)
			}

			if outputFile == "" {
				fmt.Println(string(b))
				return nil
			}

			if dir := filepath.Dir(outputFile); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("creating directory %s: %w", dir, err)
				}
			}
			if err := os.WriteFile(outputFile, b, 0o644); err != nil {
				return fmt.Errorf("writing schema: %w", err)
			}
			fmt.Printf("JSON Schema written to %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")

	return cmd
}
