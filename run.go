package pyexec

import (
	"github.com/python-exec/python-exec/config"
	"github.com/python-exec/python-exec/errors"
	"github.com/python-exec/python-exec/internal/identity"
	"github.com/python-exec/python-exec/internal/logger"
	"github.com/python-exec/python-exec/internal/preference"
)

// Run dispatches argv, whose first element is the path the script was
// invoked through. It only returns when no implementation could be executed,
// or after a dry run.
func (e *Executor) Run(argv []string) error {
	if len(argv) == 0 || argv[0] == "" {
		return &errors.UsageError{Program: e.FrontendName}
	}

	id, err := e.ResolveIdentity(argv[0])
	if err != nil {
		return err
	}
	e.Identity = id

	res, err := e.LoadConfig(id)
	if err != nil {
		return err
	}
	e.Config = res

	if e.Dry {
		return e.PrintDry(id, res, argv)
	}
	return e.dispatch(id, res.Table, argv)
}

// ResolveIdentity follows the symlinks from invocation to the dispatcher.
func (e *Executor) ResolveIdentity(invocation string) (*identity.Identity, error) {
	r := &identity.Resolver{
		WrapperNames: e.WrapperNames,
		MaxHops:      e.MaxHops,
		MaxPathLen:   e.MaxPathLen,
		PathEnv:      e.Getenv("PATH"),
	}
	id, err := r.Resolve(invocation)
	if err != nil {
		return nil, err
	}
	e.Logger.VerboseErrf(logger.Magenta, "python-exec: %s resolved to %q through %v", invocation, id.Basename, id.Chain)
	return id, nil
}

// LoadConfig builds the preference table for id.
func (e *Executor) LoadConfig(id *identity.Identity) (*config.Result, error) {
	loader := config.NewLoader(
		config.WithGetenv(e.Getenv),
		config.WithConfigDir(e.ConfigDir()),
		config.WithLegacyDir(e.LegacyConfigDir()),
		config.WithLimits(e.MaxImplLen, e.MaxPathLen),
		config.WithFuzzyModel(e.fuzzyModel),
		config.WithReportFunc(e.Logger.Report),
	)
	res, err := loader.Load(preference.NewTable(e.Implementations...), id.Basename)
	if err != nil {
		return nil, err
	}
	if !res.Table.Ranked() {
		e.Logger.VerboseErrf(logger.Magenta, "python-exec: no preference configured, using the built-in order")
	}
	for _, src := range res.Sources {
		e.Logger.VerboseErrf(logger.Magenta, "python-exec: %s %s: preferred %v, disabled %v", src.Kind, src.Path, src.Applied, src.Disabled)
	}
	return res, nil
}
