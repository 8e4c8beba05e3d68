package commands

import (
	"fmt"
	"os"

	"github.com/404wolf/mdvalidate/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCmd creates the init command. Grounded on the teacher's
// cmd/mdschema/commands/init.go runInit, repurposed from writing a default
// YAML validation schema to writing a default CLI-defaults file, since the
// validation schema is now a Markdown document with no fixed default shape.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a .mdvalidate.yml file with default CLI options",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}
}

func runInit() error {
	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Printf("%s already exists\n", config.FileName)
		return nil
	}
	if err := config.WriteDefault(config.FileName); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	fmt.Printf("created %s\n", config.FileName)
	return nil
}
