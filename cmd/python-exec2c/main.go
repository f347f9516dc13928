package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	pyexec "github.com/python-exec/python-exec"
	"github.com/python-exec/python-exec/errors"
	"github.com/python-exec/python-exec/internal/buildcfg"
	"github.com/python-exec/python-exec/internal/flags"
	"github.com/python-exec/python-exec/internal/logger"
	"github.com/python-exec/python-exec/internal/term"
	"github.com/python-exec/python-exec/internal/version"
)

func main() {
	err := run(os.Args, os.Stdout, os.Stderr)
	if err == nil {
		os.Exit(errors.CodeOk)
	}
	// the usage message has already been printed
	if errors.ExitCode(err) != errors.CodeUsage {
		l := logger.New(false, term.IsErrTerminal())
		l.Report(err)
	}
	os.Exit(errors.ExitCode(err))
}

func run(args []string, stdout, stderr io.Writer) error {
	build := buildcfg.Get()
	if len(args) == 0 {
		err := &errors.UsageError{Program: build.FrontendName}
		fmt.Fprintln(stderr, err)
		return err
	}

	// Anything but the front-end name is a symlink to a script: every argument
	// belongs to the script.
	if filepath.Base(args[0]) != build.FrontendName {
		e := pyexec.NewExecutor(
			pyexec.WithStdout(stdout),
			pyexec.WithStderr(stderr),
			pyexec.WithColor(term.IsErrTerminal()),
		)
		if err := e.Setup(); err != nil {
			return err
		}
		return e.Run(args)
	}

	configDir := build.ConfigDir()
	if err := flags.Parse(build.FrontendName, args[1:]); err != nil {
		return err
	}
	if err := flags.Validate(); err != nil {
		if errors.ExitCode(err) == errors.CodeUsage {
			flags.PrintUsage(stderr, configDir)
		}
		return err
	}

	if flags.Version {
		fmt.Fprintf(stdout, "python-exec version: %s\n", version.GetVersionWithBuildInfo())
		return nil
	}
	if flags.Help {
		flags.PrintUsage(stdout, configDir)
		return nil
	}

	e := pyexec.NewExecutor(
		pyexec.WithStdout(stdout),
		pyexec.WithStderr(stderr),
		flags.WithFlags(),
	)
	if !term.IsErrTerminal() {
		e.Options(pyexec.WithColor(false))
	}
	if err := e.Setup(); err != nil {
		return err
	}

	if flags.List {
		e.ListImplementations()
		return nil
	}
	return e.Run(flags.Args)
}
