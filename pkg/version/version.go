// Package version reports the build version of batchview.
package version

import "runtime/debug"

// Set at build time via
//
//	-ldflags "-X github.com/rshade/batchview/pkg/version.version=v1.2.3 ..."
//
//nolint:gochecknoglobals // Overridden by the linker.
var (
	version   = "dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the release version. Without linker flags it falls back
// to the module version recorded by `go install`, then to "dev".
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}
