package pyexec

import (
	"os"
	"path/filepath"

	"github.com/python-exec/python-exec/config"
	"github.com/python-exec/python-exec/errors"
	"github.com/python-exec/python-exec/internal/env"
	"github.com/python-exec/python-exec/internal/logger"
)

// SettingsFile is the dotenv file holding PYTHON_EXEC_* settings, relative to
// ConfigDir.
const SettingsFile = "python-exec.env"

func (e *Executor) Setup() error {
	if len(e.Implementations) == 0 {
		return errors.New("python-exec: no supported implementations configured")
	}
	e.setupLogger()
	e.readSettings()
	e.setupDefaults()
	e.setupFuzzyModel()
	return nil
}

func (e *Executor) setupLogger() {
	e.Logger = &logger.Logger{
		Stdout:  e.Stdout,
		Stderr:  e.Stderr,
		Verbose: e.Verbose,
		Color:   e.Color,
	}
}

// readSettings loads the settings file. A broken settings file must not keep
// scripts from running, so it is only reported.
func (e *Executor) readSettings() {
	path := filepath.Join(e.ConfigDir(), SettingsFile)
	if err := env.Load(path); err != nil {
		e.Logger.Report(err)
		return
	}
	if verbose, ok := env.GetExecEnvBool("VERBOSE"); ok && verbose {
		e.Verbose = true
		e.Logger.Verbose = true
	}
	if hops, ok := env.GetExecEnvInt("MAX_HOPS"); ok && hops > 0 && e.MaxHops == 0 {
		e.MaxHops = hops
	}
}

func (e *Executor) setupDefaults() {
	if e.Environ == nil {
		e.Environ = os.Environ()
	}
	if e.Format == "" {
		e.Format = FormatTable
	}
}

func (e *Executor) setupFuzzyModel() {
	if e.fuzzyModel != nil {
		return
	}
	e.fuzzyModel = config.NewFuzzyModel(e.Implementations)
}
