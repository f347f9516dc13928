package pyexec

import (
	"fmt"
	"os"
	"strings"

	"github.com/Ladicle/tabwriter"
	"go.yaml.in/yaml/v3"

	"github.com/python-exec/python-exec/config"
	"github.com/python-exec/python-exec/errors"
	"github.com/python-exec/python-exec/internal/execext"
	"github.com/python-exec/python-exec/internal/identity"
	"github.com/python-exec/python-exec/internal/logger"
	"github.com/python-exec/python-exec/internal/preference"
)

// Output formats of PrintDry.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

type dryCandidate struct {
	Name           string `yaml:"name"`
	Implementation string `yaml:"implementation"`
	Rank           string `yaml:"rank"`
	Path           string `yaml:"path"`
	Installed      bool   `yaml:"installed"`
	Command        string `yaml:"command"`
}

type dryReport struct {
	Script     string          `yaml:"script"`
	Invocation string          `yaml:"invocation"`
	Target     string          `yaml:"target"`
	Real       string          `yaml:"real"`
	Chain      []string        `yaml:"chain"`
	Names      []string        `yaml:"names"`
	Sources    []config.Source `yaml:"sources"`
	Candidates []dryCandidate  `yaml:"candidates"`
	Disabled   []string        `yaml:"disabled,omitempty"`
}

// PrintDry prints what Run would try for argv, without executing anything.
func (e *Executor) PrintDry(id *identity.Identity, res *config.Result, argv []string) error {
	candidates, err := e.Candidates(id, res.Table)
	if err != nil {
		return err
	}

	report := dryReport{
		Script:     id.Basename,
		Invocation: id.Invocation,
		Target:     id.Target,
		Real:       id.Real,
		Chain:      id.Chain,
		Names:      id.Names(),
		Sources:    res.Sources,
	}
	for _, impl := range res.Table.All() {
		if impl.Rank == preference.Disabled {
			report.Disabled = append(report.Disabled, impl.Name)
		}
	}
	for _, c := range candidates {
		cmd, err := execext.Build(c.Path, argv[1:]...)
		if err != nil {
			return err
		}
		report.Candidates = append(report.Candidates, dryCandidate{
			Name:           c.Name,
			Implementation: c.Implementation,
			Rank:           c.Rank.String(),
			Path:           c.Path,
			Installed:      isInstalled(c.Path),
			Command:        cmd,
		})
	}

	switch e.Format {
	case FormatYAML:
		return e.printDryYAML(report)
	case FormatTable:
		return e.printDryTable(report)
	default:
		return &errors.InvalidFlagsError{Err: fmt.Errorf("unknown format %q", e.Format)}
	}
}

func (e *Executor) printDryYAML(report dryReport) error {
	enc := yaml.NewEncoder(e.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

func (e *Executor) printDryTable(report dryReport) error {
	e.Logger.Outf(logger.Default, "Script: %s", report.Script)
	e.Logger.Outf(logger.Default, "Target: %s", report.Target)
	for _, src := range report.Sources {
		e.Logger.Outf(logger.Default, "Config: %s %s", src.Kind, src.Path)
	}
	if len(report.Disabled) > 0 {
		e.Logger.Outf(logger.Default, "Disabled: %s", strings.Join(report.Disabled, " "))
	}
	if len(report.Candidates) == 0 {
		e.Logger.Outf(logger.Yellow, "No implementation enabled.")
		return nil
	}

	w := tabwriter.NewWriter(e.Stdout, 0, 8, 2, ' ', 0)
	e.Logger.FOutf(w, logger.Default, "#\tNAME\tIMPLEMENTATION\tRANK\tSTATUS\tPATH\n")
	for i, c := range report.Candidates {
		status, color := "missing", logger.Default
		if c.Installed {
			status, color = "installed", logger.Green
		}
		e.Logger.FOutf(w, logger.Default, "%d\t%s\t%s\t%s\t", i+1, c.Name, c.Implementation, c.Rank)
		e.Logger.FOutf(w, color, "%s", status)
		e.Logger.FOutf(w, logger.Default, "\t%s\n", c.Path)
	}
	return w.Flush()
}

func isInstalled(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}

// ListImplementations prints every supported implementation, one per line,
// most preferred by default first.
func (e *Executor) ListImplementations() {
	for _, name := range e.Implementations {
		e.Logger.Outf(logger.Default, "%s", name)
	}
}
