package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAppendAndRecentRoundTrip(t *testing.T) {
	s := openTemp(t)

	require.NoError(t, s.Append("first", 100))
	require.NoError(t, s.Append("second", 101))
	require.NoError(t, s.Append("third", 102))

	lines, err := s.Recent(2)
	require.NoError(t, err)
	require.Equal(t, []string{"second", "third"}, lines)
}

func TestRecentOnEmptyStoreReturnsNothing(t *testing.T) {
	s := openTemp(t)

	lines, err := s.Recent(10)
	require.NoError(t, err)
	require.Empty(t, lines)
}

func TestOpenIsIdempotentOnExistingSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.sqlite")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Append("line", 1))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	lines, err := s2.Recent(10)
	require.NoError(t, err)
	require.Equal(t, []string{"line"}, lines)
}
