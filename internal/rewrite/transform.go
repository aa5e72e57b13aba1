// Package rewrite implements the definition engine: applying a directed
// pattern pair to a token window via the matcher, and producing the
// rewritten window.
package rewrite

import (
	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/lang/match"
	"github.com/mcgru/pink/internal/token"
)

// Transform runs the matcher on (from, window); on failure it returns
// (nil, false). On success it walks to and emits the substituted token
// sequence. If to references a variable from never bound, Transform fails
// rather than panicking - a definition well-formedness issue the engine
// tolerates silently.
func Transform(from, to lang.Pattern, window []token.Token) (lang.Expression, bool) {
	bindings, ok := match.Match(from, window)
	if !ok {
		return nil, false
	}

	out := make(lang.Expression, 0, len(window))
	for _, pt := range to {
		switch pt.Kind {
		case lang.Concrete:
			out = append(out, pt.Tok)
		case lang.Variable:
			t, ok := bindings.Single[pt.Name]
			if !ok {
				return nil, false
			}
			out = append(out, t)
		case lang.SpreadVariable:
			span, ok := bindings.Spread[pt.Name]
			if !ok {
				return nil, false
			}
			out = append(out, span...)
		}
	}
	return out, true
}

// Lower applies d in its declared direction: high -> low.
func Lower(d lang.Definition, window []token.Token) (lang.Expression, bool) {
	return Transform(d.High, d.Low, window)
}

// Raise applies d in reverse: low -> high. The evaluator never calls this;
// it exists as the symmetric operation to Lower, useful to callers outside
// the evaluator (e.g. tooling or tests that want to exercise a rule's
// reverse direction directly).
func Raise(d lang.Definition, window []token.Token) (lang.Expression, bool) {
	return Transform(d.Low, d.High, window)
}
