// Package config fills the preference table from the environment and the
// configuration files.
package config

import (
	"os"

	"github.com/sajari/fuzzy"

	"github.com/python-exec/python-exec/internal/preference"
)

// EnvVar overrides every configuration file when set to a known
// implementation.
const EnvVar = "EPYTHON"

const (
	confExt        = ".conf"
	globalBasename = "python-exec"
)

// Legacy single-value files, in the order they are consulted.
var legacyFiles = []string{
	"config",
	"python2",
	"python3",
}

type SourceKind string

const (
	SourceEnv       SourceKind = "env"
	SourcePerScript SourceKind = "script"
	SourceGlobal    SourceKind = "global"
	SourceLegacy    SourceKind = "legacy"
)

// Source describes one configuration source that was found while loading.
type Source struct {
	Kind     SourceKind `yaml:"kind"`
	Path     string     `yaml:"path"`
	Applied  []string   `yaml:"applied,omitempty"`
	Disabled []string   `yaml:"disabled,omitempty"`
}

// Result is the outcome of Load. Table is frozen.
type Result struct {
	Table   *preference.Table
	Sources []Source
}

type (
	// ReportFunc receives the configuration problems that don't stop the
	// loading.
	ReportFunc func(error)
	// A LoaderOption is any type that can apply a configuration to a
	// [Loader].
	LoaderOption interface {
		ApplyToLoader(*Loader)
	}
	// A Loader assigns ranks to the implementations of a [preference.Table]
	// from the configuration sources, most important first.
	Loader struct {
		getenv     func(string) string
		configDir  string
		legacyDir  string
		maxImplLen int
		maxPathLen int
		report     ReportFunc
		model      *fuzzy.Model
	}
)

// NewLoader constructs a new [Loader] using the given options.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		getenv:     os.Getenv,
		configDir:  "/etc/python-exec",
		legacyDir:  "/etc/env.d/python",
		maxImplLen: 32,
		maxPathLen: 4096,
		report:     func(error) {},
	}
	l.Options(opts...)
	return l
}

// Options loops through the given [LoaderOption] functions and applies them
// to the [Loader].
func (l *Loader) Options(opts ...LoaderOption) {
	for _, opt := range opts {
		opt.ApplyToLoader(l)
	}
}

// WithGetenv sets the function used to read EPYTHON.
func WithGetenv(getenv func(string) string) LoaderOption {
	return &getenvOption{getenv: getenv}
}

type getenvOption struct {
	getenv func(string) string
}

func (o *getenvOption) ApplyToLoader(l *Loader) {
	l.getenv = o.getenv
}

// WithConfigDir sets the directory holding python-exec.conf and the
// per-script files.
func WithConfigDir(dir string) LoaderOption {
	return &configDirOption{dir: dir}
}

type configDirOption struct {
	dir string
}

func (o *configDirOption) ApplyToLoader(l *Loader) {
	l.configDir = o.dir
}

// WithLegacyDir sets the eselect-python directory.
func WithLegacyDir(dir string) LoaderOption {
	return &legacyDirOption{dir: dir}
}

type legacyDirOption struct {
	dir string
}

func (o *legacyDirOption) ApplyToLoader(l *Loader) {
	l.legacyDir = o.dir
}

// WithLimits sets the longest accepted implementation name and the longest
// accepted path. Values of zero or less keep the current limit.
func WithLimits(maxImplLen, maxPathLen int) LoaderOption {
	return &limitsOption{maxImplLen: maxImplLen, maxPathLen: maxPathLen}
}

type limitsOption struct {
	maxImplLen int
	maxPathLen int
}

func (o *limitsOption) ApplyToLoader(l *Loader) {
	if o.maxImplLen > 0 {
		l.maxImplLen = o.maxImplLen
	}
	if o.maxPathLen > 0 {
		l.maxPathLen = o.maxPathLen
	}
}

// WithReportFunc sets the function receiving non fatal configuration errors.
func WithReportFunc(report ReportFunc) LoaderOption {
	return &reportOption{report: report}
}

type reportOption struct {
	report ReportFunc
}

func (o *reportOption) ApplyToLoader(l *Loader) {
	if o.report != nil {
		l.report = o.report
	}
}

// WithFuzzyModel sets the model used to suggest an implementation when an
// unknown one is configured. Without it, a model is trained from the table on
// the first unknown name.
func WithFuzzyModel(model *fuzzy.Model) LoaderOption {
	return &fuzzyModelOption{model: model}
}

type fuzzyModelOption struct {
	model *fuzzy.Model
}

func (o *fuzzyModelOption) ApplyToLoader(l *Loader) {
	l.model = o.model
}

// NewFuzzyModel trains a spelling model on the known implementations.
func NewFuzzyModel(names []string) *fuzzy.Model {
	model := fuzzy.NewModel()
	model.SetThreshold(1)
	model.SetDepth(2)
	model.Train(names)
	return model
}
