package pyexec

import (
	"slices"

	"github.com/python-exec/python-exec/errors"
	"github.com/python-exec/python-exec/internal/execext"
	"github.com/python-exec/python-exec/internal/filepathext"
	"github.com/python-exec/python-exec/internal/identity"
	"github.com/python-exec/python-exec/internal/logger"
	"github.com/python-exec/python-exec/internal/preference"
)

// Candidate is one script variant the dispatcher may execute.
type Candidate struct {
	Name           string
	Implementation string
	Rank           preference.Rank
	Path           string
}

// Candidates lists the variants in the order they are tried: every
// implementation for the primary name first, then for each remaining name of
// the chain.
func (e *Executor) Candidates(id *identity.Identity, table *preference.Table) ([]Candidate, error) {
	order := table.Order()
	var candidates []Candidate
	for _, name := range id.Names() {
		level, err := e.candidatesFor(name, order)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, level...)
	}
	return candidates, nil
}

func (e *Executor) candidatesFor(name string, order []preference.Implementation) ([]Candidate, error) {
	candidates := make([]Candidate, 0, len(order))
	for _, impl := range order {
		path, err := filepathext.CandidatePath(e.ScriptRoot(), impl.Name, name, e.MaxPathLen)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{
			Name:           name,
			Implementation: impl.Name,
			Rank:           impl.Rank,
			Path:           path,
		})
	}
	return candidates, nil
}

// dispatch tries one name of the chain at a time: the paths of a name are
// only built once every variant of the previous names failed.
func (e *Executor) dispatch(id *identity.Identity, table *preference.Table, argv []string) error {
	order := table.Order()
	var tried []string
	for _, name := range id.Names() {
		candidates, err := e.candidatesFor(name, order)
		if err != nil {
			return err
		}
		for _, c := range candidates {
			if !slices.Contains(tried, c.Implementation) {
				tried = append(tried, c.Implementation)
			}
			e.Logger.VerboseErrf(logger.Magenta, "python-exec: trying %s", c.Path)
			if e.execCandidate(c.Path, argv) {
				return nil
			}
		}
	}

	return &errors.NoImplementationError{Script: id.Basename, Tried: tried}
}

// execCandidate runs path with argv[0] replaced by path. A real execution
// never returns; true is only returned by replacement Exec functions reporting
// success.
func (e *Executor) execCandidate(path string, argv []string) bool {
	args := make([]string, 0, len(argv))
	args = append(args, path)
	args = append(args, argv[1:]...)

	err := e.Exec(path, args, e.Environ)
	switch {
	case err == nil:
		return true
	case execext.IsNotExist(err):
		return false
	case execext.IsExecFormat(err):
		e.Logger.VerboseErrf(logger.Yellow, "python-exec: %s: retrying through env", path)
		err = execext.ExecViaEnv(e.Exec, e.Getenv("PATH"), path, args, e.Environ)
		if err == nil {
			return true
		}
	}
	e.Logger.Report(&errors.ExecError{Path: path, Err: err})
	return false
}
