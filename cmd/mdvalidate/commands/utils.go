package commands

import (
	"errors"

	"github.com/404wolf/mdvalidate/internal/config"
	"github.com/spf13/cobra"
)

// ErrViolationsFound is returned by check when the report carries errors.
// Grounded on the teacher's cmd/mdschema/commands/check.go ErrViolationsFound:
// same sentinel-error pattern for distinguishing "validation ran and found
// problems" from "validation could not run at all".
var ErrViolationsFound = errors.New("validation violations found")

// applyConfigDefaults overlays .mdvalidate.yml defaults (internal/config)
// onto cfg, but only for flags the caller did not explicitly set —
// explicit flags always win over file defaults.
func applyConfigDefaults(cmd *cobra.Command, cfg *Config) {
	path, err := config.Find(".")
	if err != nil {
		return
	}
	fileCfg, err := config.Load(path)
	if err != nil {
		return
	}

	flags := cmd.Flags()
	if !flags.Changed("fast-fail") && fileCfg.FastFail {
		cfg.FastFail = true
	}
	if !flags.Changed("quiet") && fileCfg.Quiet {
		cfg.Quiet = true
	}
	if !flags.Changed("format") && fileCfg.Output != "" {
		cfg.Format = fileCfg.Output
	}
	if !flags.Changed("select") && fileCfg.Select != "" {
		cfg.Select = fileCfg.Select
	}
}
