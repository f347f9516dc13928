package errors

import "errors"

// General exit codes
const (
	CodeOk      int = iota // Used when the program exits without errors
	CodeUnknown            // Used when no other exit code is appropriate
)

// Usage related exit codes
const (
	CodeUsage int = iota + 100
	CodeWrapperInvokedDirectly
	CodeInvalidFlags
)

// Identity resolution related exit codes
const (
	CodeSymlinkRead int = iota + 200
	CodeNotFoundInPath
	CodePathTooLong
	CodeSymlinkLoop
)

// Configuration related codes. Configuration errors are never fatal, the code
// only identifies the family when the error ends up being returned anyway.
const (
	CodeInvalidImplementation int = iota + 300
	CodeConfigUnreadable
)

// Dispatch related exit codes
const (
	CodeExecFailed int = iota + 400
)

// CodeNoImplementation is used when every candidate failed to execute. It is
// the conventional "command not found" status of POSIX shells.
const CodeNoImplementation int = 127

// PyExecError extends the standard error interface with a Code method. This
// code will be used as the exit code of the program which allows the caller to
// distinguish between different types of errors.
type PyExecError interface {
	error
	Code() int
}

// New returns an error that formats as the given text. Each call to New returns
// a distinct error value even if the text is identical. This wraps the standard
// errors.New function so that we don't need to alias that package.
func New(text string) error {
	return errors.New(text)
}

// Is wraps the standard errors.Is function so that we don't need to alias that package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps the standard errors.As function so that we don't need to alias that package.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// ExitCode returns the exit code carried by err, CodeOk for a nil error and
// CodeUnknown for errors that don't carry one.
func ExitCode(err error) int {
	if err == nil {
		return CodeOk
	}
	var pyErr PyExecError
	if As(err, &pyErr) {
		return pyErr.Code()
	}
	return CodeUnknown
}
