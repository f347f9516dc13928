package preference

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(impls []Implementation) []string {
	out := make([]string, 0, len(impls))
	for _, impl := range impls {
		out = append(out, impl.Name)
	}
	return out
}

func TestNewTableDefaults(t *testing.T) {
	t.Parallel()

	table := NewTable("python3.13", "python3.12", "pypy3", "python3.12")

	assert.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"python3.13", "python3.12", "pypy3"}, table.Names())
	assert.False(t, table.Ranked())

	impl, ok := table.Get("pypy3")
	require.True(t, ok)
	assert.Equal(t, Default, impl.Rank)
	assert.Equal(t, 2, impl.Index)

	assert.Equal(t, []string{"python3.13", "python3.12", "pypy3"}, names(table.Order()))
}

func TestPreferFirstWriteWins(t *testing.T) {
	t.Parallel()

	table := NewTable("python3.13", "python3.12", "pypy3")

	ok, err := table.Prefer("pypy3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = table.Prefer("pypy3")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = table.Disable("pypy3")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = table.Prefer("python3.12")
	require.NoError(t, err)
	assert.True(t, ok)

	pypy, _ := table.Get("pypy3")
	py312, _ := table.Get("python3.12")
	assert.Equal(t, Rank(0), pypy.Rank)
	assert.Equal(t, Rank(1), py312.Rank)
	assert.True(t, table.Ranked())

	assert.Equal(t, []string{"pypy3", "python3.12", "python3.13"}, names(table.Order()))
}

func TestDisabledNeverOrdered(t *testing.T) {
	t.Parallel()

	table := NewTable("a", "b", "c", "d")

	_, err := table.Prefer("a")
	require.NoError(t, err)
	_, err = table.Disable("b")
	require.NoError(t, err)
	_, err = table.Prefer("c")
	require.NoError(t, err)

	// A disabled name can't be ranked again.
	ok, err := table.Prefer("b")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "c", "d"}, names(table.Order()))

	b, _ := table.Get("b")
	assert.Equal(t, Disabled, b.Rank)
	assert.Len(t, table.All(), 4)
}

func TestUnknownImplementation(t *testing.T) {
	t.Parallel()

	table := NewTable("python3.12")

	ok, err := table.Prefer("python2.7")
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrUnknown)
	assert.Equal(t, 1, table.Len())
}

func TestFrozenTable(t *testing.T) {
	t.Parallel()

	table := NewTable("python3.12", "python3.13")
	table.Freeze()

	_, err := table.Prefer("python3.13")
	require.ErrorIs(t, err, ErrFrozen)
	_, err = table.Disable("python3.12")
	require.ErrorIs(t, err, ErrFrozen)

	assert.True(t, table.Frozen())
	assert.Equal(t, []string{"python3.12", "python3.13"}, names(table.Order()))
}

func TestRankString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", Default.String())
	assert.Equal(t, "disabled", Disabled.String())
	assert.Equal(t, "3", Rank(3).String())
}

func TestEqualRanksKeepRegistrationOrder(t *testing.T) {
	t.Parallel()

	table := NewTable("a", "b", "c", "d")
	for _, name := range []string{"d", "b"} {
		_, err := table.set(name, 0)
		require.NoError(t, err)
	}
	_, err := table.set("a", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "d", "a", "c"}, names(table.Order()))
}
