package pyexec

import (
	"io"
	"os"

	"github.com/sajari/fuzzy"

	"github.com/python-exec/python-exec/config"
	"github.com/python-exec/python-exec/internal/buildcfg"
	"github.com/python-exec/python-exec/internal/execext"
	"github.com/python-exec/python-exec/internal/identity"
	"github.com/python-exec/python-exec/internal/logger"
)

type (
	// An ExecutorOption is a functional option for an Executor
	ExecutorOption func(*Executor)
	// An Executor resolves the script it was invoked for, orders the
	// implementations and executes the first installed variant.
	Executor struct {
		// Flags
		Verbose bool
		Color   bool
		Dry     bool
		Format  string

		// Build
		Prefix          string
		Implementations []string
		WrapperNames    []string
		FrontendName    string
		MaxImplLen      int
		MaxPathLen      int
		MaxHops         int

		// I/O
		Stdout  io.Writer
		Stderr  io.Writer
		Environ []string
		Getenv  func(string) string
		Exec    execext.ExecFunc

		// Internal
		Logger   *logger.Logger
		Identity *identity.Identity
		Config   *config.Result

		fuzzyModel *fuzzy.Model
	}
)

func NewExecutor(opts ...ExecutorOption) *Executor {
	build := buildcfg.Get()
	e := &Executor{
		Color:           true,
		Format:          FormatTable,
		Prefix:          build.Prefix,
		Implementations: build.Implementations,
		WrapperNames:    build.WrapperNames,
		FrontendName:    build.FrontendName,
		MaxImplLen:      build.MaxImplLen,
		MaxPathLen:      build.MaxPathLen,
		MaxHops:         0,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Environ:         nil,
		Getenv:          os.Getenv,
		Exec:            execext.Exec,
		Logger:          nil,
		fuzzyModel:      nil,
	}
	e.Options(opts...)
	return e
}

func (e *Executor) Options(opts ...ExecutorOption) {
	for _, opt := range opts {
		opt(e)
	}
}

func WithVerbose(verbose bool) ExecutorOption {
	return func(e *Executor) {
		e.Verbose = verbose
	}
}

func WithColor(color bool) ExecutorOption {
	return func(e *Executor) {
		e.Color = color
	}
}

func WithDry(dry bool) ExecutorOption {
	return func(e *Executor) {
		e.Dry = dry
	}
}

func WithFormat(format string) ExecutorOption {
	return func(e *Executor) {
		e.Format = format
	}
}

// WithPrefix sets the offset prefix every system path is resolved against.
func WithPrefix(prefix string) ExecutorOption {
	return func(e *Executor) {
		e.Prefix = prefix
	}
}

// WithImplementations replaces the supported implementations, most preferred
// first.
func WithImplementations(impls ...string) ExecutorOption {
	return func(e *Executor) {
		e.Implementations = impls
	}
}

func WithWrapperNames(names ...string) ExecutorOption {
	return func(e *Executor) {
		e.WrapperNames = names
	}
}

func WithLimits(maxImplLen, maxPathLen int) ExecutorOption {
	return func(e *Executor) {
		e.MaxImplLen = maxImplLen
		e.MaxPathLen = maxPathLen
	}
}

func WithMaxHops(maxHops int) ExecutorOption {
	return func(e *Executor) {
		e.MaxHops = maxHops
	}
}

func WithStdout(stdout io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.Stdout = stdout
	}
}

func WithStderr(stderr io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.Stderr = stderr
	}
}

// WithEnviron sets the environment handed to the interpreter. It defaults to
// the environment of the dispatcher.
func WithEnviron(environ []string) ExecutorOption {
	return func(e *Executor) {
		e.Environ = environ
	}
}

// WithGetenv sets the function used to read EPYTHON and PATH.
func WithGetenv(getenv func(string) string) ExecutorOption {
	return func(e *Executor) {
		e.Getenv = getenv
	}
}

// WithExec replaces the function used to execute a candidate.
func WithExec(exec execext.ExecFunc) ExecutorOption {
	return func(e *Executor) {
		e.Exec = exec
	}
}

// ScriptRoot returns the directory holding one sub directory per
// implementation.
func (e *Executor) ScriptRoot() string {
	return e.Prefix + buildcfg.ScriptRootDir
}

// ConfigDir returns the directory holding python-exec.conf.
func (e *Executor) ConfigDir() string {
	return e.Prefix + buildcfg.ConfigDir
}

// LegacyConfigDir returns the eselect-python directory.
func (e *Executor) LegacyConfigDir() string {
	return e.Prefix + buildcfg.LegacyConfigDir
}
