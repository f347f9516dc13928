package version

import (
	_ "embed"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver/v3"
)

var (
	//go:embed version.txt
	version string
	commit  string
	dirty   bool
)

func init() {
	version = strings.TrimSpace(version)
	// Attempt to get build info from the Go runtime. We only use this if not
	// built from a tagged version.
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version == "(devel)" {
		commit = getCommit(info)
		dirty = getDirty(info)
	}
}

func getDirty(info *debug.BuildInfo) bool {
	for _, setting := range info.Settings {
		if setting.Key == "vcs.modified" {
			return setting.Value == "true"
		}
	}
	return false
}

func getCommit(info *debug.BuildInfo) string {
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value[:min(len(setting.Value), 7)]
		}
	}
	return ""
}

// GetVersion returns the version of python-exec. A build from an untagged or
// modified tree reports the next minor version.
func GetVersion() string {
	v, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	if commit != "" || dirty {
		next := v.IncMinor()
		v = &next
	}
	return v.String()
}

// GetVersionWithBuildInfo is GetVersion with the commit and dirty flag
// appended as semver build metadata.
func GetVersionWithBuildInfo() string {
	v := GetVersion()
	var meta []string
	if commit != "" {
		meta = append(meta, commit)
	}
	if dirty {
		meta = append(meta, "dirty")
	}
	if len(meta) == 0 {
		return v
	}
	return v + "+" + strings.Join(meta, ".")
}
