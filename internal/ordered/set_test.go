package ordered

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetKeepsMembersSorted(t *testing.T) {
	s := NewSet("banana", "apple", "cherry")
	require.Equal(t, []string{"apple", "banana", "cherry"}, s.Members())
}

func TestSetAddDeduplicates(t *testing.T) {
	s := NewSet("a")
	s.Add("a")
	require.Equal(t, 1, s.Len())
}

func TestUnionKeepsMembersSorted(t *testing.T) {
	a := NewSet("b", "a")
	b := NewSet("c")
	u := Union(a, b)
	require.Equal(t, []string{"a", "b", "c"}, u.Members())
}

func TestLongestPrefixMatchPrefersLongerMember(t *testing.T) {
	s := NewSet("a", "ab")
	match, ok := s.LongestPrefixMatch("abc")
	require.True(t, ok)
	require.Equal(t, "ab", match)
}

func TestLongestPrefixMatchNoCandidate(t *testing.T) {
	s := NewSet("x", "y")
	_, ok := s.LongestPrefixMatch("abc")
	require.False(t, ok)
}
