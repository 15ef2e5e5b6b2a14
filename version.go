package hvscmeta

import "runtime"

// Version is the semantic version of the hvscmeta library.
const Version = "0.1.0"

// VersionInfo describes the build of the library or dump tool.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns the version and build information.
//
// GitCommit and BuildTime are set at build time:
//
//	go build -ldflags="-X github.com/simonhull/hvscmeta.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/hvscmeta.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/hvsc-dump
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// String formats the information on one line.
func (v VersionInfo) String() string {
	return "hvscmeta " + v.Version + " (" + v.GitCommit + ", built " + v.BuildTime + " with " + v.GoVersion + ")"
}

var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
