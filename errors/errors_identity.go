package errors

import "fmt"

// SymlinkReadError is returned when a link in the invocation chain exists but
// can't be read for any reason other than not being a symlink.
type SymlinkReadError struct {
	Path string
	Err  error
}

func (err *SymlinkReadError) Error() string {
	return fmt.Sprintf("python-exec: unable to read symlink at %s: %v", err.Path, err.Err)
}

func (err *SymlinkReadError) Code() int {
	return CodeSymlinkRead
}

func (err *SymlinkReadError) Unwrap() error {
	return err.Err
}

// IdentityNotFoundError is returned when the invocation name has no directory
// component and no matching executable exists in any PATH directory.
type IdentityNotFoundError struct {
	Name string
	Path string
}

func (err *IdentityNotFoundError) Error() string {
	if err.Path == "" {
		return fmt.Sprintf("python-exec: unable to find %q: PATH is not set", err.Name)
	}
	return fmt.Sprintf("python-exec: unable to find %q in PATH", err.Name)
}

func (err *IdentityNotFoundError) Code() int {
	return CodeNotFoundInPath
}

// PathTooLongError is returned when a constructed path exceeds the maximum
// accepted length.
type PathTooLongError struct {
	Path  string
	Limit int
}

func (err *PathTooLongError) Error() string {
	return fmt.Sprintf("python-exec: path longer than %d bytes: %.64s...", err.Limit, err.Path)
}

func (err *PathTooLongError) Code() int {
	return CodePathTooLong
}

// SymlinkLoopError is returned when following the invocation chain takes more
// hops than allowed.
type SymlinkLoopError struct {
	Path string
	Hops int
}

func (err *SymlinkLoopError) Error() string {
	return fmt.Sprintf("python-exec: too many levels of symbolic links (%d) resolving %s", err.Hops, err.Path)
}

func (err *SymlinkLoopError) Code() int {
	return CodeSymlinkLoop
}
