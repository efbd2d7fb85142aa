// Package version holds build metadata injected via ldflags.
package version

// Set by the build:
// -ldflags "-X .../internal/version.Version=v1.2.3 ...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
