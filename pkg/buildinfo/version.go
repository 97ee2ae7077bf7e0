// Package buildinfo reports which anchorgraph build is running.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/anchorgraph/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/anchorgraph/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/anchorgraph/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/anchorgraph
//
// Builds without ldflags (go install, go run) fall back to the module
// version and VCS settings the Go toolchain embeds.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"sync"
)

const devVersion = "dev"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = devVersion

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Info is a snapshot of the build variables.
type Info struct {
	Version  string
	Commit   string
	Date     string
	Modified bool
}

var (
	once   sync.Once
	cached Info
)

// Get returns the build information, filling unset variables from the
// binary's embedded build settings.
func Get() Info {
	once.Do(func() {
		cached = Info{Version: Version, Commit: Commit, Date: Date}
		if bi, ok := debug.ReadBuildInfo(); ok {
			cached = fromBuildInfo(cached, bi)
		}
	})
	return cached
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "unknown" {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// CacheScope identifies renders made by this build. Development builds
// include the commit so a rebuilt binary does not reuse stale output.
func (i Info) CacheScope() string {
	if i.Version != devVersion {
		return i.Version
	}
	scope := devVersion + "+" + shortCommit(i.Commit)
	if i.Modified {
		scope += ".dirty"
	}
	return scope
}

// Template returns the version template string for cobra.
func (i Info) Template() string {
	commit := i.Commit
	if i.Modified {
		commit += " (modified)"
	}
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", i.Version, commit, i.Date)
}

func shortCommit(c string) string {
	if len(c) > 12 {
		return c[:12]
	}
	return c
}
