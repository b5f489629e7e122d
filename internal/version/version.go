// Package version holds build metadata. The variables are overridden at build
// time via -ldflags "-X github.com/jamesainslie/go-pangu/internal/version.Version=...".
package version

import "fmt"

var (
	// Version is the release version.
	Version = "dev"

	// Commit is the short git commit hash.
	Commit = ""

	// Date is the build time in RFC 3339.
	Date = ""
)

// String formats the build metadata for --version output.
func String() string {
	s := Version
	if Commit != "" {
		s += fmt.Sprintf(" (%s)", Commit)
	}
	if Date != "" {
		s += " built " + Date
	}
	return s
}
