package errors

import "fmt"

// UsageError is returned when the dispatcher is run as a front-end without a
// script argument.
type UsageError struct {
	Program string
}

func (err *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <script> [<argv>...]", err.Program)
}

func (err *UsageError) Code() int {
	return CodeUsage
}

// WrapperInvokedDirectlyError is returned when the identity resolution ends at
// one of the dispatcher's own names without any link pointing at it.
type WrapperInvokedDirectlyError struct {
	Path string
}

func (err *WrapperInvokedDirectlyError) Error() string {
	return fmt.Sprintf("python-exec: %s is a wrapper and must not be invoked directly, run a script symlinked to it instead", err.Path)
}

func (err *WrapperInvokedDirectlyError) Code() int {
	return CodeWrapperInvokedDirectly
}

// InvalidFlagsError wraps a command line parsing error.
type InvalidFlagsError struct {
	Err error
}

func (err *InvalidFlagsError) Error() string {
	return fmt.Sprintf("python-exec: %v", err.Err)
}

func (err *InvalidFlagsError) Code() int {
	return CodeInvalidFlags
}

func (err *InvalidFlagsError) Unwrap() error {
	return err.Err
}
