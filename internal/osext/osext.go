package osext

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// ExpandPrefix expands environment variables and a leading "~" in an
// installation prefix such as "~/gentoo" or "$EPREFIX". An empty prefix stays
// empty, meaning the root of the filesystem. The result never ends with a
// separator so that it can be concatenated with absolute directories.
func ExpandPrefix(prefix string) (string, error) {
	if prefix == "" {
		return "", nil
	}

	expanded, err := homedir.Expand(os.ExpandEnv(prefix))
	if err != nil {
		return "", err
	}
	if expanded == "" {
		return "", nil
	}

	expanded = filepath.Clean(expanded)
	if expanded == string(filepath.Separator) {
		return "", nil
	}
	return expanded, nil
}
