// Package version holds build-time version metadata for the mdvalidate CLI.
package version

import "fmt"

// These are overridden at build time via -ldflags
// "-X github.com/404wolf/mdvalidate/internal/version.Version=... ".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the human-readable version string printed by `mdvalidate version`.
func Info() string {
	return fmt.Sprintf("mdvalidate %s (commit %s, built %s)", Version, Commit, Date)
}
