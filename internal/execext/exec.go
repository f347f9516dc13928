// Package execext replaces the running dispatcher with the selected
// interpreter script.
package execext

import (
	"errors"
	"io/fs"
	"syscall"

	"github.com/python-exec/python-exec/internal/identity"
)

// ExecFunc replaces the current process with path, run with argv and envv. It
// only returns on failure.
type ExecFunc func(path string, argv []string, envv []string) error

// ErrNoEnv is returned by ExecViaEnv when no env tool can be found.
var ErrNoEnv = errors.New("execext: env not found in PATH")

// Exec replaces the current process with path. See exec_unix.go and
// exec_other.go for the platform specific behaviour.
func Exec(path string, argv []string, envv []string) error {
	return execProcess(path, argv, envv)
}

// ExecViaEnv runs path through the env tool, for systems where the kernel
// refuses to run scripts directly: "env <path> argv[1:]...". env is searched
// for in pathEnv.
func ExecViaEnv(execFn ExecFunc, pathEnv, path string, argv []string, envv []string) error {
	envPath, err := identity.LookPath("env", pathEnv)
	if err != nil {
		return ErrNoEnv
	}
	args := make([]string, 0, len(argv)+1)
	args = append(args, "env", path)
	if len(argv) > 1 {
		args = append(args, argv[1:]...)
	}
	return execFn(envPath, args, envv)
}

// IsNotExist reports whether err means that the candidate isn't installed.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

// IsExecFormat reports whether err means that the kernel does not know how to
// run the candidate.
func IsExecFormat(err error) bool {
	return errors.Is(err, syscall.ENOEXEC)
}
