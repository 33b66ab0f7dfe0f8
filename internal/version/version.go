// Package version carries build metadata injected with -ldflags.
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = ""
	// BuildDate is the RFC3339 build timestamp.
	BuildDate = ""
)
