package filepathext

import (
	"path/filepath"
	"strings"

	"github.com/python-exec/python-exec/errors"
)

// JoinLink resolves a symlink target read from link. Absolute targets replace
// the path, relative ones are taken relative to the directory holding the
// link. The result is not cleaned: "dir/../x" must be resolved by the kernel
// since dir may itself be a symlink.
func JoinLink(link, target string) string {
	if filepath.IsAbs(target) {
		return target
	}
	dir := filepath.Dir(link)
	if dir == "." && !strings.HasPrefix(link, "."+string(filepath.Separator)) {
		return target
	}
	return dir + string(filepath.Separator) + target
}

// HasDir reports whether path contains a directory component, i.e. whether it
// would be used as is by execve rather than searched for in PATH.
func HasDir(path string) bool {
	return strings.ContainsRune(path, filepath.Separator) || strings.ContainsRune(path, '/')
}

// CheckLen returns a PathTooLongError if path is longer than limit bytes. A
// limit of zero or less disables the check.
func CheckLen(path string, limit int) error {
	if limit > 0 && len(path) > limit {
		return &errors.PathTooLongError{Path: path, Limit: limit}
	}
	return nil
}

// CandidatePath builds <root>/<impl>/<basename>, the location of the script
// copy installed for one implementation.
func CandidatePath(root, impl, basename string, limit int) (string, error) {
	path := root + string(filepath.Separator) + impl + string(filepath.Separator) + basename
	if err := CheckLen(path, limit); err != nil {
		return "", err
	}
	return path, nil
}

// ConfigPath builds <dir>/<basename><ext>, the location of a per-script
// configuration file.
func ConfigPath(dir, basename, ext string, limit int) (string, error) {
	path := dir + string(filepath.Separator) + basename + ext
	if err := CheckLen(path, limit); err != nil {
		return "", err
	}
	return path, nil
}
