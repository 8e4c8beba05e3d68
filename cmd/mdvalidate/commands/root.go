// Package commands implements the mdvalidate CLI command tree. Grounded on
// the teacher's cmd/mdschema/commands package: same root-command shape
// (persistent flags bound into a context-carried Config, subcommands
// registered in NewRootCmd), generalized from the YAML-DSL validator's
// flags to the pair-walked comparison engine's.
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type configKey struct{}

// Config holds CLI configuration shared across subcommands via the command
// context, overlaying .mdvalidate.yml defaults (internal/config) with
// explicit flags.
type Config struct {
	FastFail  bool
	Quiet     bool
	Format    string
	Select    string
	ChunkSize int
}

// ConfigFromContext retrieves Config from the command context.
func ConfigFromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	return &Config{Format: "text"}
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cfg := &Config{}

	cmd := &cobra.Command{
		Use:   "mdvalidate",
		Short: "Validate a Markdown document against a Markdown-shaped schema",
		Long: `mdvalidate compares an input Markdown document against a schema document
that is itself Markdown: inline code spans and link destinations in the
schema may contain matcher expressions (named regexes or literal flags)
that the corresponding positions of the input must satisfy.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applyConfigDefaults(cmd, cfg)
			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&cfg.FastFail, "fast-fail", false, "stop at the first violation instead of collecting every one")
	cmd.PersistentFlags().BoolVar(&cfg.Quiet, "quiet", false, "suppress the \"no violations found\" success line")
	cmd.PersistentFlags().StringVar(&cfg.Format, "format", "text", "report format: text or json")
	cmd.PersistentFlags().StringVar(&cfg.Select, "select", "", "expr-lang expression filtering which captures are reported")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits the process with the code
// spec.md §6.5 prescribes: 0 clean, 1 validation errors, 2 operational
// failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if errors.Is(err, ErrViolationsFound) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
