package term

import (
	"os"

	"golang.org/x/term"
)

// IsErrTerminal reports whether diagnostics are written to a terminal.
func IsErrTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
