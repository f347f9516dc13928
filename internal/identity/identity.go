// Package identity recovers the name a script was invoked under, undoing the
// symlinks that lead from the user visible name to the dispatcher.
package identity

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/python-exec/python-exec/errors"
	"github.com/python-exec/python-exec/internal/filepathext"
)

// DefaultMaxHops bounds the number of symlinks followed, like the kernel's
// MAXSYMLINKS.
const DefaultMaxHops = 40

// Identity is the result of resolving an invocation path. It is never
// modified once returned.
type Identity struct {
	// Invocation is the path as it was given.
	Invocation string
	// Basename is the primary name: the first name of the chain that isn't
	// one of the dispatcher's own names.
	Basename string
	// Dir is the directory holding Basename.
	Dir string
	// Target is the symlink farm entry pointing at the dispatcher, or the
	// path of a plain copy of it.
	Target string
	// Real is the last path of the chain, the file actually on disk.
	Real string
	// Chain lists every path visited, starting with the invocation path
	// (after the PATH search, if one was needed).
	Chain []string

	names []string
}

// Names returns the distinct basenames that scripts may be installed under,
// primary first and Target's basename last.
func (id *Identity) Names() []string {
	return slices.Clone(id.names)
}

// Resolver turns invocation paths into identities.
type Resolver struct {
	// WrapperNames are the names the dispatcher itself is installed under.
	WrapperNames []string
	// MaxHops bounds the number of symlinks followed. DefaultMaxHops is used
	// when it isn't positive.
	MaxHops int
	// MaxPathLen bounds the length of every path built while resolving.
	MaxPathLen int
	// PathEnv is the value searched when the invocation has no directory
	// component.
	PathEnv string
}

// Resolve follows the chain of symlinks starting at invocation.
func (r *Resolver) Resolve(invocation string) (*Identity, error) {
	path := invocation
	if !filepathext.HasDir(path) {
		var err error
		if path, err = r.lookPath(path); err != nil {
			return nil, err
		}
	}
	if err := filepathext.CheckLen(path, r.MaxPathLen); err != nil {
		return nil, err
	}

	maxHops := r.MaxHops
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}

	chain := []string{path}
	for {
		target, isLink, err := readLink(path)
		if err != nil {
			return nil, err
		}
		if !isLink {
			break
		}
		if len(chain) > maxHops {
			return nil, &errors.SymlinkLoopError{Path: invocation, Hops: maxHops}
		}
		path = filepathext.JoinLink(path, target)
		if err := filepathext.CheckLen(path, r.MaxPathLen); err != nil {
			return nil, err
		}
		chain = append(chain, path)
	}

	return r.identify(invocation, chain)
}

// identify applies the terminal rule to a fully walked chain. A chain ending at
// the dispatcher is answered by the closest earlier hop that isn't the
// dispatcher; a chain ending anywhere else was reached through a plain copy.
func (r *Resolver) identify(invocation string, chain []string) (*Identity, error) {
	last := len(chain) - 1
	targetIdx := last
	if r.isWrapper(chain[last]) {
		targetIdx = -1
		for i := last - 1; i >= 0; i-- {
			if !r.isWrapper(chain[i]) {
				targetIdx = i
				break
			}
		}
		if targetIdx < 0 {
			return nil, &errors.WrapperInvokedDirectlyError{Path: chain[0]}
		}
	}

	id := &Identity{
		Invocation: invocation,
		Target:     chain[targetIdx],
		Real:       chain[last],
		Chain:      chain,
	}
	for _, p := range chain[:targetIdx+1] {
		if r.isWrapper(p) {
			continue
		}
		name := filepath.Base(p)
		if id.Basename == "" {
			id.Basename = name
			id.Dir = filepath.Dir(p)
		}
		if !slices.Contains(id.names, name) {
			id.names = append(id.names, name)
		}
	}
	return id, nil
}

func (r *Resolver) isWrapper(path string) bool {
	return slices.Contains(r.WrapperNames, filepath.Base(path))
}

// readLink reads one level of symlink. A path that exists but isn't a symlink
// is reported with isLink false; anything else that prevents reading it is a
// SymlinkReadError.
func readLink(path string) (target string, isLink bool, err error) {
	target, err = os.Readlink(path)
	if err == nil {
		return target, true, nil
	}
	fi, lerr := os.Lstat(path)
	if lerr != nil {
		return "", false, &errors.SymlinkReadError{Path: path, Err: lerr}
	}
	if fi.Mode()&os.ModeSymlink == 0 {
		return "", false, nil
	}
	return "", false, &errors.SymlinkReadError{Path: path, Err: err}
}
