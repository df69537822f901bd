// Package buildinfo reports which tempo build is running.
//
// Release builds stamp the version through ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/tempo/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/tempo/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/tempo/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries installed with go install carry no ldflags; their module version
// and VCS stamps are read from the embedded build information instead.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Stamped by ldflags. The zero values mark a field as unset.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
	// Modified is set when the binary was built from a dirty work tree.
	Modified bool
}

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Get returns the build information, preferring ldflags over the module's
// embedded build information.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
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

func (i Info) commit() string {
	if i.Modified {
		return i.Commit + " (modified)"
	}
	return i.Commit
}

func (i Info) details() string {
	s := fmt.Sprintf("commit: %s\nbuilt: %s\n", i.commit(), i.Date)
	if i.GoVersion != "" {
		s += "go: " + i.GoVersion + "\n"
	}
	return s
}

// String returns the build information, one field per line.
func (i Info) String() string {
	return "version: " + i.Version + "\n" + i.details()
}

// Template returns a cobra version template.
func (i Info) Template() string {
	return "{{.Name}} version " + i.Version + "\n" + i.details()
}
