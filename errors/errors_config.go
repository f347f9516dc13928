package errors

import "fmt"

// InvalidImplementationError is reported when a configuration source names an
// implementation that is unknown or longer than allowed. It never aborts the
// configuration loading.
type InvalidImplementationError struct {
	Source     string
	Value      string
	TooLong    bool
	DidYouMean string
}

func (err *InvalidImplementationError) Error() string {
	if err.TooLong {
		return fmt.Sprintf("python-exec: %s value invalid (too long)", err.Source)
	}
	if err.DidYouMean != "" {
		return fmt.Sprintf("python-exec: %s value %q invalid (unknown implementation). Did you mean %q?", err.Source, err.Value, err.DidYouMean)
	}
	return fmt.Sprintf("python-exec: %s value %q invalid (unknown implementation)", err.Source, err.Value)
}

func (err *InvalidImplementationError) Code() int {
	return CodeInvalidImplementation
}

// ConfigUnreadableError is reported when a configuration file exists but can't
// be read.
type ConfigUnreadableError struct {
	Path string
	Err  error
}

func (err *ConfigUnreadableError) Error() string {
	return fmt.Sprintf("python-exec: unable to read %s: %v", err.Path, err.Err)
}

func (err *ConfigUnreadableError) Code() int {
	return CodeConfigUnreadable
}

func (err *ConfigUnreadableError) Unwrap() error {
	return err.Err
}
