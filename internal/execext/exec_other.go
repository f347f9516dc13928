//go:build !unix

package execext

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"
)

// execProcess emulates process replacement on platforms without execve: the
// candidate runs as a child with the inherited standard streams and the
// dispatcher exits with the child's status once it is done. This costs one
// extra process for the lifetime of the interpreter.
func execProcess(path string, argv []string, envv []string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    envv,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if err := cmd.Start(); err != nil {
		return err
	}

	// The console delivers interrupts to the child as well. The dispatcher
	// has to outlive it to hand over its exit status.
	stop := interceptInterrupts()
	err := cmd.Wait()
	stop()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		os.Exit(1)
	}
	os.Exit(0)
	return nil
}

func interceptInterrupts() (stop func()) {
	ch := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(ch, os.Interrupt)
	go func() {
		for {
			select {
			case <-ch:
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
