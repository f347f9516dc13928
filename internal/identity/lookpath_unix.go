//go:build unix

package identity

import (
	"io/fs"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func findExecutable(file string) error {
	if err := unix.Access(file, unix.X_OK); err != nil {
		return err
	}
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if d.IsDir() {
		return syscall.EISDIR
	}
	if d.Mode()&0o111 == 0 {
		return fs.ErrPermission
	}
	return nil
}
