package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcgru/pink/internal/resolver"
)

func TestPeanoArithmeticThroughEmbeddedStdlib(t *testing.T) {
	sources := resolver.NewMapResolver(map[string]string{
		"main": "use { std/peano }\n",
	})
	chain := resolver.Chain(resolver.NewStdResolver(), sources)

	e, err := Load(chain, "main")
	require.NoError(t, err)

	result, _, err := e.Eval("s ( s ( 0 ) ) + s ( 0 )")
	require.NoError(t, err)
	require.Equal(t, "s ( s ( s ( 0 ) ) )", result.String())
}

func TestIdentityRuleThroughParser(t *testing.T) {
	sources := resolver.NewMapResolver(map[string]string{
		"main": "domain { a }\n\na => a ;\n",
	})

	e, err := Load(sources, "main")
	require.NoError(t, err)

	result, visited, err := e.Eval("a")
	require.NoError(t, err)
	require.Equal(t, "a", result.String())
	require.Len(t, visited, 1)
}

func TestUnknownTokenThroughParser(t *testing.T) {
	sources := resolver.NewMapResolver(map[string]string{
		"main": "domain { a }\n",
	})

	e, err := Load(sources, "main")
	require.NoError(t, err)

	_, _, err = e.Eval("a b")
	require.Error(t, err)
}

func TestIntrinsicOnlyEngineHasNoDomain(t *testing.T) {
	e := Intrinsic()
	require.Equal(t, 0, e.Runtime.Domain().Len())
	require.True(t, e.Runtime.Has("intrinsic"))
}
