package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHeaderClauses(t *testing.T) {
	src := `
domain { 0 }
reserve { s, +, (, ) }
use { std/bool, std/list }

s ( x... ) + y... => s ( x... + y... ) ;
0 + x... => x... ;
`
	h, err := ParseHeader(src)
	require.NoError(t, err)
	require.Equal(t, []string{"0"}, h.Domain)
	require.Equal(t, []string{"s", "+", "(", ")"}, h.Reserved)
	require.Equal(t, []string{"std/bool", "std/list"}, h.Use)
	require.Len(t, h.Definitions, 2)
	require.Equal(t, "s ( x... ) + y...", h.Definitions[0].HeadText)
	require.Equal(t, "s ( x... + y... )", h.Definitions[0].TailText)
	require.False(t, h.Definitions[0].Bidirectional)
}

func TestParseHeaderBidirectionalDefinitionSplitsOnArrow(t *testing.T) {
	src := `
domain { a }
reserve { + }

x + y <=> y + x ;
`
	h, err := ParseHeader(src)
	require.NoError(t, err)
	require.Len(t, h.Definitions, 1)
	require.True(t, h.Definitions[0].Bidirectional)
	require.Equal(t, "x + y", h.Definitions[0].HeadText)
	require.Equal(t, "y + x", h.Definitions[0].TailText)
}

func TestParseHeaderRejectsMalformedDefinition(t *testing.T) {
	src := `
domain { a }

a => b => c ;
`
	_, err := ParseHeader(src)
	require.Error(t, err)
}

func TestParseHeaderStripsComments(t *testing.T) {
	src := `
# a leading comment
domain { a } # trailing comment too
reserve { }

a => a ; # identity
`
	h, err := ParseHeader(src)
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, h.Domain)
	require.Len(t, h.Definitions, 1)
}
