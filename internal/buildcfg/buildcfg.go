// Package buildcfg holds the values that are fixed when the dispatcher is
// built. Each of them can be replaced at link time, for example:
//
//	go build -ldflags "-X github.com/python-exec/python-exec/internal/buildcfg.implementations=python3.13 python3.12"
package buildcfg

import (
	"strconv"
	"strings"

	"github.com/python-exec/python-exec/internal/osext"
)

var (
	// prefix is the offset prefix of the installation (EPREFIX).
	prefix = ""
	// implementations lists every supported implementation, most preferred
	// first, separated by whitespace.
	implementations = "python3.14 python3.13 python3.12 python3.11 pypy3.11 pypy3"
	// wrapperNames lists the names under which the dispatcher itself is
	// installed.
	wrapperNames = "python-exec2 python-exec2c"
	// frontendName is the name that makes the binary behave as a front-end
	// taking the script as its first argument.
	frontendName = "python-exec2c"
	maxImplLen   = "32"
	maxPathLen   = "4096"
)

const (
	// ScriptRootDir is where the per-implementation script copies live,
	// relative to the prefix.
	ScriptRootDir = "/usr/lib/python-exec"
	// ConfigDir holds the global and the per-script configuration files,
	// relative to the prefix.
	ConfigDir = "/etc/python-exec"
	// LegacyConfigDir is the eselect-python configuration directory, relative
	// to the prefix.
	LegacyConfigDir = "/etc/env.d/python"
)

// Config is the parsed form of the link time values.
type Config struct {
	Prefix          string
	Implementations []string
	WrapperNames    []string
	FrontendName    string
	MaxImplLen      int
	MaxPathLen      int
}

// Get parses the link time values. Malformed numbers fall back to the
// defaults.
func Get() Config {
	p, err := osext.ExpandPrefix(prefix)
	if err != nil {
		p = strings.TrimSuffix(prefix, "/")
	}
	return Config{
		Prefix:          p,
		Implementations: strings.Fields(implementations),
		WrapperNames:    strings.Fields(wrapperNames),
		FrontendName:    frontendName,
		MaxImplLen:      atoi(maxImplLen, 32),
		MaxPathLen:      atoi(maxPathLen, 4096),
	}
}

// ConfigDir returns the prefixed configuration directory.
func (c Config) ConfigDir() string {
	return c.Prefix + ConfigDir
}

func atoi(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
