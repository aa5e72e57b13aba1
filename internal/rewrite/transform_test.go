package rewrite

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/token"
)

func TestLowerAppliesPeanoSuccessorRule(t *testing.T) {
	// s ( x ) + y => s ( x + y )
	high := lang.Pattern{
		lang.NewConcrete(token.NewLiteral("s")), lang.NewConcrete(token.NewLiteral("(")),
		lang.NewVariable("x"), lang.NewConcrete(token.NewLiteral(")")),
		lang.NewConcrete(token.NewLiteral("+")), lang.NewVariable("y"),
	}
	low := lang.Pattern{
		lang.NewConcrete(token.NewLiteral("s")), lang.NewConcrete(token.NewLiteral("(")),
		lang.NewVariable("x"), lang.NewConcrete(token.NewLiteral("+")), lang.NewVariable("y"),
		lang.NewConcrete(token.NewLiteral(")")),
	}
	d := lang.Definition{High: high, Low: low}

	window := []token.Token{
		token.NewLiteral("s"), token.NewLiteral("("), token.NewElement("0"), token.NewLiteral(")"),
		token.NewLiteral("+"), token.NewElement("0"),
	}

	out, ok := Lower(d, window)
	require.True(t, ok)
	require.Equal(t, lang.Expression{
		token.NewLiteral("s"), token.NewLiteral("("), token.NewElement("0"),
		token.NewLiteral("+"), token.NewElement("0"), token.NewLiteral(")"),
	}, out)
}

func TestLowerFailsWhenHighDoesNotMatch(t *testing.T) {
	d := lang.Definition{
		High: lang.Pattern{lang.NewConcrete(token.NewLiteral("a"))},
		Low:  lang.Pattern{lang.NewConcrete(token.NewLiteral("b"))},
	}
	_, ok := Lower(d, []token.Token{token.NewLiteral("z")})
	require.False(t, ok)
}

func TestIdentityRuleLowersToItself(t *testing.T) {
	// a => a
	d := lang.Definition{
		High: lang.Pattern{lang.NewConcrete(token.NewElement("a"))},
		Low:  lang.Pattern{lang.NewConcrete(token.NewElement("a"))},
	}
	out, ok := Lower(d, []token.Token{token.NewElement("a")})
	require.True(t, ok)
	require.Equal(t, lang.Expression{token.NewElement("a")}, out)
}

func TestRaiseIsTransformReversed(t *testing.T) {
	d := lang.Definition{
		High: lang.Pattern{lang.NewVariable("x"), lang.NewConcrete(token.NewLiteral("+")), lang.NewVariable("y")},
		Low:  lang.Pattern{lang.NewVariable("y"), lang.NewConcrete(token.NewLiteral("+")), lang.NewVariable("x")},
	}
	window := []token.Token{token.NewElement("b"), token.NewLiteral("+"), token.NewElement("a")}

	out, ok := Raise(d, window)
	require.True(t, ok)
	require.Equal(t, lang.Expression{token.NewElement("a"), token.NewLiteral("+"), token.NewElement("b")}, out)
}

// TestTransformFaithfulToReportedBindings checks that substituting the
// reported bindings into the low side by hand reproduces Lower's output
// exactly.
func TestTransformFaithfulToReportedBindings(t *testing.T) {
	d := lang.Definition{
		High: lang.Pattern{lang.NewConcrete(token.NewLiteral("a")), lang.NewSpread("rest")},
		Low:  lang.Pattern{lang.NewSpread("rest"), lang.NewConcrete(token.NewLiteral("a"))},
	}
	window := []token.Token{token.NewLiteral("a"), token.NewElement("x"), token.NewElement("y")}

	out, ok := Lower(d, window)
	require.True(t, ok)

	manual := lang.Expression{token.NewElement("x"), token.NewElement("y"), token.NewLiteral("a")}
	require.Equal(t, manual, out)
}
