// Package version exposes build metadata for tasklist --version.
package version

import (
	"fmt"
)

// These variables are populated at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns the version line printed by --version.
func Info() string {
	return fmt.Sprintf("%s, commit %s, built %s", Version, Commit, Date)
}
