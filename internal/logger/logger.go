package logger

import (
	"fmt"
	"io"
	"os"
)

// Logger writes the dispatcher's own messages. Diagnostics always go to
// Stderr, Stdout is only used by the informational flags.
type Logger struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Verbose bool
	Color   bool
}

// New returns a Logger writing to the process' standard streams.
func New(verbose, color bool) *Logger {
	return &Logger{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Verbose: verbose,
		Color:   color,
	}
}

// Outf prints stuff to STDOUT.
func (l *Logger) Outf(color Color, s string, args ...any) {
	l.FOutf(l.Stdout, color, s+"\n", args...)
}

// FOutf prints stuff to the given writer.
func (l *Logger) FOutf(w io.Writer, color Color, s string, args ...any) {
	if len(args) == 0 {
		s, args = "%s", []any{s}
	}
	if !l.Color {
		fmt.Fprintf(w, s, args...)
		return
	}
	print := color()
	print(w, s, args...)
}

// Errf prints stuff to STDERR.
func (l *Logger) Errf(color Color, s string, args ...any) {
	l.FOutf(l.Stderr, color, s+"\n", args...)
}

// VerboseErrf prints stuff to STDERR if verbose mode is enabled.
func (l *Logger) VerboseErrf(color Color, s string, args ...any) {
	if l.Verbose {
		l.Errf(color, s, args...)
	}
}

// Report prints an error to STDERR in red. Nil errors are ignored.
func (l *Logger) Report(err error) {
	if err == nil {
		return
	}
	l.Errf(Red, "%v", err)
}
