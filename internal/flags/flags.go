// Package flags parses the command line of the front-end mode, where the
// dispatcher is invoked under its own name with the script as argument.
package flags

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	pyexec "github.com/python-exec/python-exec"
	"github.com/python-exec/python-exec/errors"
)

const usage = `Usage: %s [flags...] <script> [<argv>...]

Runs the variant of <script> installed for the most preferred Python
implementation. The preference comes from the EPYTHON environment variable,
then from %s/<script>.conf, %s/python-exec.conf or the
eselect-python files.

Flags are only read before <script>: every later argument is handed to the
script unchanged.

Options:
`

var (
	Version bool
	Help    bool
	List    bool
	Verbose bool
	Dry     bool
	Color   bool
	Format  string

	// Args holds <script> and its arguments.
	Args []string

	set *pflag.FlagSet
)

// Parse reads the flags from args, the command line without the program
// name.
func Parse(program string, args []string) error {
	set = pflag.NewFlagSet(program, pflag.ContinueOnError)
	set.SetInterspersed(false)
	set.SetOutput(io.Discard)

	set.BoolVarP(&Version, "version", "V", false, "Show python-exec version.")
	set.BoolVarP(&Help, "help", "h", false, "Shows python-exec usage.")
	set.BoolVarP(&List, "list-implementations", "l", false, "Lists the supported implementations.")
	set.BoolVarP(&Verbose, "verbose", "v", false, "Traces the resolution and every attempted candidate.")
	set.BoolVarP(&Dry, "dry", "n", false, "Prints the candidates in the order they would be tried, without executing them.")
	set.BoolVarP(&Color, "color", "c", true, "Colored output. Enabled by default. Set flag to false or use NO_COLOR=1 to disable.")
	set.StringVar(&Format, "format", pyexec.FormatTable, "Sets the --dry output format: [table|yaml].")

	if err := set.Parse(args); err != nil {
		return &errors.InvalidFlagsError{Err: err}
	}
	Args = set.Args()
	return nil
}

// Validate checks the flags read by the last Parse.
func Validate() error {
	if set == nil {
		return &errors.InvalidFlagsError{Err: errors.New("flags were not parsed")}
	}
	if Format != pyexec.FormatTable && Format != pyexec.FormatYAML {
		return &errors.InvalidFlagsError{Err: fmt.Errorf("unknown --format %q", Format)}
	}
	if set.Changed("format") && !Dry {
		return &errors.InvalidFlagsError{Err: fmt.Errorf("you can't set --format without --dry")}
	}
	if !Version && !Help && !List && len(Args) == 0 {
		return &errors.UsageError{Program: set.Name()}
	}
	return nil
}

// PrintUsage writes the usage message and the flag defaults to w.
func PrintUsage(w io.Writer, configDir string) {
	fmt.Fprintf(w, usage, set.Name(), configDir, configDir)
	fmt.Fprint(w, set.FlagUsages())
}

// WithFlags returns the executor options matching the parsed flags.
func WithFlags() pyexec.ExecutorOption {
	return func(e *pyexec.Executor) {
		e.Options(
			pyexec.WithVerbose(Verbose),
			pyexec.WithColor(Color && os.Getenv("NO_COLOR") == ""),
			pyexec.WithDry(Dry),
			pyexec.WithFormat(Format),
		)
	}
}
