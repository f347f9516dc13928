package errors

import (
	"fmt"
	"strings"
)

// ExecError is reported when a candidate exists but executing it failed. The
// dispatcher keeps trying the remaining candidates.
type ExecError struct {
	Path string
	Err  error
}

func (err *ExecError) Error() string {
	return fmt.Sprintf("python-exec: unable to execute %s: %v", err.Path, err.Err)
}

func (err *ExecError) Code() int {
	return CodeExecFailed
}

func (err *ExecError) Unwrap() error {
	return err.Err
}

// NoImplementationError is returned when every candidate has been tried and
// none could be executed.
type NoImplementationError struct {
	Script string
	Tried  []string
}

func (err *NoImplementationError) Error() string {
	if len(err.Tried) == 0 {
		return fmt.Sprintf("%s: no supported Python implementation variant found!", err.Script)
	}
	return fmt.Sprintf("%s: no supported Python implementation variant found! (tried: %s)", err.Script, strings.Join(err.Tried, ", "))
}

func (err *NoImplementationError) Code() int {
	return CodeNoImplementation
}
