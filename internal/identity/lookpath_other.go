//go:build !unix

package identity

import (
	"os"
	"syscall"
)

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if d.IsDir() {
		return syscall.EISDIR
	}
	return nil
}
