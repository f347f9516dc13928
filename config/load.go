package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/python-exec/python-exec/errors"
	"github.com/python-exec/python-exec/internal/filepathext"
	"github.com/python-exec/python-exec/internal/preference"
)

// Load assigns ranks in table for the script named basename and freezes it.
// The sources are, in order: EPYTHON, the per-script file, the global file
// and, only when the global file is missing, the legacy eselect-python files.
// Problems in a source are reported and never abort the loading; only an
// overlong configuration path or an already frozen table is returned as an
// error.
func (l *Loader) Load(table *preference.Table, basename string) (*Result, error) {
	if table.Frozen() {
		return nil, preference.ErrFrozen
	}
	res := &Result{Table: table}
	defer table.Freeze()

	l.loadEnv(res)

	scriptPath, err := filepathext.ConfigPath(l.configDir, basename, confExt, l.maxPathLen)
	if err != nil {
		return nil, err
	}
	if l.loadList(res, SourcePerScript, scriptPath) {
		return res, nil
	}

	globalPath, err := filepathext.ConfigPath(l.configDir, globalBasename, confExt, l.maxPathLen)
	if err != nil {
		return nil, err
	}
	if _, err := os.Lstat(globalPath); err == nil {
		l.loadList(res, SourceGlobal, globalPath)
		return res, nil
	}

	for _, name := range legacyFiles {
		path, err := filepathext.ConfigPath(l.legacyDir, name, "", l.maxPathLen)
		if err != nil {
			return nil, err
		}
		l.loadLegacy(res, path)
	}
	return res, nil
}

func (l *Loader) loadEnv(res *Result) {
	value := l.getenv(EnvVar)
	if value == "" {
		return
	}
	src := Source{Kind: SourceEnv, Path: EnvVar}
	if l.prefer(res.Table, EnvVar, value) {
		src.Applied = append(src.Applied, value)
	}
	res.Sources = append(res.Sources, src)
}

// loadList applies a file holding one implementation per line and reports
// whether it could be read.
func (l *Loader) loadList(res *Result, kind SourceKind, path string) bool {
	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.report(&errors.ConfigUnreadableError{Path: path, Err: err})
		}
		return false
	}

	src := Source{Kind: kind, Path: path}
	for _, line := range parseList(b) {
		if name, ok := strings.CutPrefix(line, "-"); ok {
			if l.disable(res.Table, path, name) {
				src.Disabled = append(src.Disabled, name)
			}
			continue
		}
		if l.prefer(res.Table, path, line) {
			src.Applied = append(src.Applied, line)
		}
	}
	res.Sources = append(res.Sources, src)
	return true
}

func (l *Loader) loadLegacy(res *Result, path string) {
	value, err := readLegacy(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.report(&errors.ConfigUnreadableError{Path: path, Err: err})
		}
		return
	}
	if value == "" {
		return
	}
	src := Source{Kind: SourceLegacy, Path: path}
	if l.prefer(res.Table, path, value) {
		src.Applied = append(src.Applied, value)
	}
	res.Sources = append(res.Sources, src)
}

func (l *Loader) prefer(table *preference.Table, source, name string) bool {
	if !l.validate(table, source, name) {
		return false
	}
	ok, err := table.Prefer(name)
	if err != nil {
		l.report(err)
	}
	return ok
}

func (l *Loader) disable(table *preference.Table, source, name string) bool {
	if !l.validate(table, source, name) {
		return false
	}
	ok, err := table.Disable(name)
	if err != nil {
		l.report(err)
	}
	return ok
}

func (l *Loader) validate(table *preference.Table, source, name string) bool {
	if len(name) > l.maxImplLen {
		l.report(&errors.InvalidImplementationError{Source: source, Value: name, TooLong: true})
		return false
	}
	if table.Has(name) {
		return true
	}
	if l.model == nil {
		l.model = NewFuzzyModel(table.Names())
	}
	l.report(&errors.InvalidImplementationError{
		Source:     source,
		Value:      name,
		DidYouMean: l.model.SpellCheck(name),
	})
	return false
}

// parseList returns the meaningful lines of a multi-line file: trimmed, with
// blank lines and comments left out.
func parseList(b []byte) []string {
	var lines []string
	for line := range bytes.Lines(b) {
		s := strings.TrimSpace(string(line))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		lines = append(lines, s)
	}
	return lines
}

// readLegacy returns the value of a single-value file. A symlink contributes
// the name of its target instead of the target's content.
func readLegacy(path string) (string, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return "", err
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		target, err := os.Readlink(path)
		if err != nil {
			return "", err
		}
		return filepath.Base(target), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(b, []byte("\n"))), nil
}
