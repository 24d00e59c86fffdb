// Package version reports build information injected at link time with
// -ldflags "-X github.com/rshade/pagenav/pkg/version.version=...".
package version

import "fmt"

//nolint:gochecknoglobals // Set via -ldflags at build time.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// GetGitCommit returns the commit the binary was built from.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp.
func GetBuildDate() string {
	return buildDate
}

// String returns a one-line description of the build.
func String() string {
	return fmt.Sprintf("pagenav %s (commit %s, built %s)", version, gitCommit, buildDate)
}
