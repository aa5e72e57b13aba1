package lang

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcgru/pink/internal/token"
)

func TestExpressionLessShorterWins(t *testing.T) {
	short := Expression{token.NewElement("a")}
	long := Expression{token.NewElement("a"), token.NewElement("b")}
	require.True(t, short.Less(long))
	require.False(t, long.Less(short))
}

func TestExpressionLessLexicographicTieBreak(t *testing.T) {
	a := Expression{token.NewElement("a"), token.NewElement("z")}
	b := Expression{token.NewElement("a"), token.NewElement("b")}
	require.True(t, b.Less(a))
}

func TestMinPicksCanonicalSmallest(t *testing.T) {
	set := []Expression{
		{token.NewElement("a"), token.NewElement("b")},
		{token.NewElement("a")},
		{token.NewElement("z")},
	}
	require.Equal(t, Expression{token.NewElement("a")}, Min(set))
}

func TestExpressionKeyDistinguishesKind(t *testing.T) {
	e1 := Expression{token.NewElement("x")}
	e2 := Expression{token.NewLiteral("x")}
	require.NotEqual(t, e1.Key(), e2.Key())
}
