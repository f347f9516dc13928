//go:build unix

package execext

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

func execProcess(path string, argv []string, envv []string) error {
	err := unix.Exec(path, argv, envv)
	return &fs.PathError{Op: "exec", Path: path, Err: err}
}
