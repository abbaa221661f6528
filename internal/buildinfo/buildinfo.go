// Package buildinfo carries release metadata injected via ldflags.
package buildinfo

// Injected by the release pipeline; empty for local/dev builds.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
