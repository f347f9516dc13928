package filepathext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/python-exec/python-exec/errors"
)

func TestJoinLink(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/usr/bin/foo3", JoinLink("/usr/bin/foo", "foo3"))
	assert.Equal(t, "/usr/bin/../lib/python-exec/python-exec2", JoinLink("/usr/bin/foo", "../lib/python-exec/python-exec2"))
	assert.Equal(t, "/opt/foo", JoinLink("/usr/bin/foo", "/opt/foo"))
	assert.Equal(t, "bar", JoinLink("foo", "bar"))
	assert.Equal(t, "./bar", JoinLink("./foo", "bar"))
}

func TestHasDir(t *testing.T) {
	t.Parallel()

	assert.False(t, HasDir("foo"))
	assert.True(t, HasDir("./foo"))
	assert.True(t, HasDir("/usr/bin/foo"))
}

func TestCandidatePath(t *testing.T) {
	t.Parallel()

	path, err := CandidatePath("/usr/lib/python-exec", "python3.12", "foo", 4096)
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib/python-exec/python3.12/foo", path)
}

func TestCandidatePathTooLong(t *testing.T) {
	t.Parallel()

	_, err := CandidatePath("/usr/lib/python-exec", "python3.12", strings.Repeat("a", 64), 32)
	require.Error(t, err)

	var tooLong *errors.PathTooLongError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, 32, tooLong.Limit)
	assert.Equal(t, errors.CodePathTooLong, errors.ExitCode(err))
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	path, err := ConfigPath("/etc/python-exec", "foo", ".conf", 0)
	require.NoError(t, err)
	assert.Equal(t, "/etc/python-exec/foo.conf", path)

	_, err = ConfigPath("/etc/python-exec", "foo", ".conf", 10)
	assert.Error(t, err)
}
