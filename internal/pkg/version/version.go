// Package version carries the build identity stamped in at link time.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version, injected via ldflags.
	Version = "dev"

	// GitCommit is the git commit hash, injected via ldflags.
	GitCommit = "unknown"

	// BuildDate is the build date, injected via ldflags.
	BuildDate = "unknown"

	// GoVersion is the Go compiler version.
	GoVersion = runtime.Version()
)

// GetVersion returns the bare version string.
func GetVersion() string {
	return Version
}

// GetFullVersion returns a detailed version string with build info.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s, %s %s/%s)",
		Version, GitCommit, BuildDate, GoVersion, runtime.GOOS, runtime.GOARCH)
}

// GetShortVersion returns the version tagged with the abbreviated commit.
func GetShortVersion() string {
	if GitCommit != "unknown" && len(GitCommit) > 7 {
		return fmt.Sprintf("%s-%s", Version, GitCommit[:7])
	}
	return Version
}
