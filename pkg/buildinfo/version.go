// Package buildinfo provides build-time version information.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/mffmt/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/mffmt/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/mffmt/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/mffmt
//
// Binaries built with plain "go install" carry no ldflags; for those the
// module version and VCS stamp recorded by the toolchain are used instead.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

const (
	unsetVersion = "dev"
	unsetCommit  = "none"
	unsetDate    = "unknown"
)

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = unsetVersion

	// Commit is the git commit SHA.
	Commit = unsetCommit

	// Date is the build timestamp.
	Date = unsetDate
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fill(info)
	}
}

// fill replaces unset variables with values from the embedded build info.
func fill(info *debug.BuildInfo) {
	if Version == unsetVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && Commit == unsetCommit:
			Commit = s.Value
		case s.Key == "vcs.time" && Date == unsetDate:
			Date = s.Value
		}
	}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
