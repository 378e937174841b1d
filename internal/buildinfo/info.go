package buildinfo

import "fmt"

// Program identifies the generating software in INFO.sru. The #PROGRAM
// line holds a single value, so the version is not part of it.
const Program = "SIEtoSRU"

var (
	// Version will be set via ldflags during build.
	Version = "dev"
	// Commit will be set via ldflags during build.
	Commit = "none"
	// Date will be set via ldflags during build.
	Date = "unknown"
)

// Summary returns the version line shown by --version.
func Summary() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
