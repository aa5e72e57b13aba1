package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorRendersCodeAndMessage(t *testing.T) {
	err := New(ErrUnknownToken, "xyz")
	require.Contains(t, err.Error(), "P002")
	require.Contains(t, err.Error(), `"xyz"`)
}

func TestAtAttachesLocation(t *testing.T) {
	err := At(ErrExpected, 3, 7, ";", "end of input")
	require.Contains(t, err.Error(), "3:7")
}

func TestCycleErrorPrependGrowsPath(t *testing.T) {
	cyc := CircularDependency("a")
	cyc = cyc.Prepend("b")
	cyc = cyc.Prepend("c")
	require.Equal(t, []string{"c", "b", "a"}, cyc.Cycle)
	require.Contains(t, cyc.Error(), "c -> b -> a")
}

func TestWrapPreservesCause(t *testing.T) {
	inner := New(ErrIO, "disk full")
	wrapped := Wrap(PhaseResolver, ErrIO, inner, "disk full")
	require.ErrorIs(t, wrapped, inner)
}
