// Package version reports the build of the stlview binary.
package version

import (
	"fmt"
	"runtime/debug"
)

// These variables are set via ldflags during build
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes a build
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	Modified  bool
}

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// Current returns the ldflags values, filling in what is missing from the
// module and VCS information the go tool embeds
func Current() Info {
	info := Info{Version: Version, GitCommit: GitCommit, BuildDate: BuildDate}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fromBuildInfo(info, bi)
	}
	return info
}

func fromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String formats the build as "version (commit c, built d)".
// Without any build information it is just the version.
func (i Info) String() string {
	if i.GitCommit == "unknown" && i.BuildDate == "unknown" {
		return i.Version
	}
	commit := i.GitCommit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if i.Modified {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, commit, i.BuildDate)
}

// GetFullVersion returns a full version string with commit and date
func GetFullVersion() string {
	return Current().String()
}
