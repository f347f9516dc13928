package identity

import (
	"path/filepath"

	"github.com/python-exec/python-exec/errors"
)

// LookPath searches pathEnv, a PATH style list, for an executable called name.
// Directories that don't exist, aren't accessible or hold no executable name
// are skipped.
func LookPath(name, pathEnv string) (string, error) {
	if pathEnv == "" {
		return "", &errors.IdentityNotFoundError{Name: name}
	}
	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := dir + string(filepath.Separator) + name
		if err := findExecutable(path); err != nil {
			continue
		}
		return path, nil
	}
	return "", &errors.IdentityNotFoundError{Name: name, Path: pathEnv}
}

func (r *Resolver) lookPath(name string) (string, error) {
	return LookPath(name, r.PathEnv)
}
