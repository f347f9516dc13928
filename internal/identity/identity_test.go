package identity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/python-exec/python-exec/errors"
)

var wrappers = []string{"python-exec2", "python-exec2c"}

func newResolver() *Resolver {
	return &Resolver{WrapperNames: wrappers, MaxPathLen: 4096}
}

func writeExecutable(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755))
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(link), 0o755))
	require.NoError(t, os.Symlink(target, link))
}

// layout creates <root>/usr/lib/python-exec/python-exec2c and returns root.
func layout(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeExecutable(t, filepath.Join(root, "usr/lib/python-exec/python-exec2c"))
	return root
}

func TestResolveSymlinkFarmEntry(t *testing.T) {
	t.Parallel()

	root := layout(t)
	foo := filepath.Join(root, "usr/bin/foo")
	symlink(t, "../lib/python-exec/python-exec2c", foo)

	id, err := newResolver().Resolve(foo)
	require.NoError(t, err)

	assert.Equal(t, "foo", id.Basename)
	assert.Equal(t, filepath.Join(root, "usr/bin"), id.Dir)
	assert.Equal(t, foo, id.Target)
	assert.Equal(t, []string{"foo"}, id.Names())
	assert.Len(t, id.Chain, 2)
	assert.Equal(t, "python-exec2c", filepath.Base(id.Real))
}

func TestResolveThroughSeveralWrappers(t *testing.T) {
	t.Parallel()

	root := layout(t)
	symlink(t, "python-exec2c", filepath.Join(root, "usr/lib/python-exec/python-exec2"))
	foo := filepath.Join(root, "usr/bin/foo")
	symlink(t, "../lib/python-exec/python-exec2", foo)

	id, err := newResolver().Resolve(foo)
	require.NoError(t, err)

	assert.Equal(t, "foo", id.Basename)
	assert.Equal(t, foo, id.Target)
	assert.Len(t, id.Chain, 3)
}

func TestResolveKeepsFirstName(t *testing.T) {
	t.Parallel()

	root := layout(t)
	bin := filepath.Join(root, "usr/bin")
	symlink(t, "../lib/python-exec/python-exec2c", filepath.Join(bin, "C"))
	symlink(t, "C", filepath.Join(bin, "B"))
	symlink(t, filepath.Join(bin, "B"), filepath.Join(bin, "A"))

	id, err := newResolver().Resolve(filepath.Join(bin, "A"))
	require.NoError(t, err)

	assert.Equal(t, "A", id.Basename)
	assert.Equal(t, filepath.Join(bin, "C"), id.Target)
	assert.Equal(t, []string{"A", "B", "C"}, id.Names())
}

func TestResolvePlainCopy(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	foo := filepath.Join(root, "foo")
	writeExecutable(t, foo)

	id, err := newResolver().Resolve(foo)
	require.NoError(t, err)

	assert.Equal(t, "foo", id.Basename)
	assert.Equal(t, foo, id.Target)
	assert.Equal(t, foo, id.Real)
	assert.Equal(t, []string{"foo"}, id.Names())
}

func TestResolveLinkToCopy(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeExecutable(t, filepath.Join(root, "bar"))
	symlink(t, "bar", filepath.Join(root, "foo"))

	id, err := newResolver().Resolve(filepath.Join(root, "foo"))
	require.NoError(t, err)

	assert.Equal(t, "foo", id.Basename)
	assert.Equal(t, filepath.Join(root, "bar"), id.Target)
	assert.Equal(t, []string{"foo", "bar"}, id.Names())
}

func TestResolveWrapperInvokedDirectly(t *testing.T) {
	t.Parallel()

	root := layout(t)

	_, err := newResolver().Resolve(filepath.Join(root, "usr/lib/python-exec/python-exec2c"))
	require.Error(t, err)

	var direct *errors.WrapperInvokedDirectlyError
	require.ErrorAs(t, err, &direct)
	assert.Equal(t, errors.CodeWrapperInvokedDirectly, errors.ExitCode(err))
}

func TestResolveWrapperLinkedToWrapper(t *testing.T) {
	t.Parallel()

	root := layout(t)
	wrapper := filepath.Join(root, "usr/lib/python-exec/python-exec2")
	symlink(t, "python-exec2c", wrapper)

	_, err := newResolver().Resolve(wrapper)
	assert.Equal(t, errors.CodeWrapperInvokedDirectly, errors.ExitCode(err))
}

func TestResolveSymlinkLoop(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	symlink(t, "b", filepath.Join(root, "a"))
	symlink(t, "a", filepath.Join(root, "b"))

	r := newResolver()
	r.MaxHops = 5
	_, err := r.Resolve(filepath.Join(root, "a"))

	var loop *errors.SymlinkLoopError
	require.ErrorAs(t, err, &loop)
	assert.Equal(t, 5, loop.Hops)
	assert.Equal(t, errors.CodeSymlinkLoop, errors.ExitCode(err))
}

func TestResolveHopLimitIsInclusive(t *testing.T) {
	t.Parallel()

	root := layout(t)
	bin := filepath.Join(root, "usr/bin")
	symlink(t, "../lib/python-exec/python-exec2c", filepath.Join(bin, "c"))
	symlink(t, "c", filepath.Join(bin, "b"))
	symlink(t, "b", filepath.Join(bin, "a"))

	r := newResolver()
	r.MaxHops = 3
	id, err := r.Resolve(filepath.Join(bin, "a"))
	require.NoError(t, err)
	assert.Equal(t, "a", id.Basename)

	r.MaxHops = 2
	_, err = r.Resolve(filepath.Join(bin, "a"))
	assert.Equal(t, errors.CodeSymlinkLoop, errors.ExitCode(err))
}

func TestResolveDanglingSymlink(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	symlink(t, "missing", filepath.Join(root, "foo"))

	_, err := newResolver().Resolve(filepath.Join(root, "foo"))

	var readErr *errors.SymlinkReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, filepath.Join(root, "missing"), readErr.Path)
	assert.Equal(t, errors.CodeSymlinkRead, errors.ExitCode(err))
}

func TestResolvePathTooLong(t *testing.T) {
	t.Parallel()

	root := layout(t)
	foo := filepath.Join(root, "usr/bin/foo")
	symlink(t, "../lib/python-exec/python-exec2c", foo)

	r := newResolver()
	r.MaxPathLen = len(foo) + 5
	_, err := r.Resolve(foo)

	assert.Equal(t, errors.CodePathTooLong, errors.ExitCode(err))
}

func TestResolveSearchesPath(t *testing.T) {
	t.Parallel()

	root := layout(t)
	notExecutable := filepath.Join(root, "plain")
	require.NoError(t, os.MkdirAll(notExecutable, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(notExecutable, "foo"), []byte("data"), 0o644))
	bin := filepath.Join(root, "usr/bin")
	symlink(t, "../lib/python-exec/python-exec2c", filepath.Join(bin, "foo"))

	r := newResolver()
	r.PathEnv = filepath.Join(root, "missing") + string(filepath.ListSeparator) +
		notExecutable + string(filepath.ListSeparator) + bin

	id, err := r.Resolve("foo")
	require.NoError(t, err)

	assert.Equal(t, "foo", id.Invocation)
	assert.Equal(t, "foo", id.Basename)
	assert.Equal(t, filepath.Join(bin, "foo"), id.Target)
}

func TestResolvePathExhausted(t *testing.T) {
	t.Parallel()

	r := newResolver()
	r.PathEnv = t.TempDir()
	_, err := r.Resolve("foo")

	var notFound *errors.IdentityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "foo", notFound.Name)
	assert.Equal(t, errors.CodeNotFoundInPath, errors.ExitCode(err))

	r.PathEnv = ""
	_, err = r.Resolve("foo")
	require.ErrorAs(t, err, &notFound)
	assert.Contains(t, err.Error(), "PATH is not set")
}
