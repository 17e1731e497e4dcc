// Package buildinfo carries the release identifiers stamped in by the release scripts.
package buildinfo

import "strings"

// Version, Commit and Date are set at build time via -ldflags -X.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the compact identifier shown in the calculator header and window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String formats every known field for -version output.
func String() string {
	parts := []string{Short()}
	if Commit != "" && Commit != "unknown" && Commit != Short() && !strings.HasPrefix(Commit, Short()) {
		parts = append(parts, Commit)
	}
	if Date != "" && Date != "unknown" {
		parts = append(parts, Date)
	}
	return strings.Join(parts, " ")
}
