// Package match implements the pattern matcher: matching a sequence of
// pattern tokens against a token sequence and producing consistent variable
// bindings, backtracking over spread-variable widths.
package match

import (
	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/token"
)

// Bindings holds the two binding maps a successful match produces. Each
// occurrence binds in the map for its own kind: Variable occurrences in
// Single, SpreadVariable occurrences in Spread. A name used as both kinds in
// one pattern gets an entry in each map.
type Bindings struct {
	Single map[string]token.Token
	Spread map[string][]token.Token
}

func newBindings() *Bindings {
	return &Bindings{
		Single: make(map[string]token.Token),
		Spread: make(map[string][]token.Token),
	}
}

// Clone returns an independent copy of b.
func (b *Bindings) Clone() *Bindings {
	out := newBindings()
	for k, v := range b.Single {
		out.Single[k] = v
	}
	for k, v := range b.Spread {
		cp := make([]token.Token, len(v))
		copy(cp, v)
		out.Spread[k] = cp
	}
	return out
}

// Match attempts to partition tokens against pattern, returning the
// resulting bindings on success. Leftover tokens once the pattern is
// exhausted are a failure. Match sees only one side of a definition, so it
// does not check for unbound right-hand-side references; Transform (see the
// definition engine) does.
func Match(pattern lang.Pattern, tokens []token.Token) (*Bindings, bool) {
	b := newBindings()
	if matchRec(pattern, tokens, b) {
		return b, true
	}
	return nil, false
}

func matchRec(pattern lang.Pattern, tokens []token.Token, b *Bindings) bool {
	if len(pattern) == 0 && len(tokens) == 0 {
		return true
	}
	if len(pattern) == 0 || len(tokens) == 0 {
		return false
	}

	head := pattern[0]
	rest := pattern[1:]

	switch head.Kind {
	case lang.Concrete:
		if !head.Tok.Equal(tokens[0]) {
			return false
		}
		return matchRec(rest, tokens[1:], b)

	case lang.Variable:
		if bound, ok := b.Single[head.Name]; ok {
			if !bound.Equal(tokens[0]) {
				return false
			}
			return matchRec(rest, tokens[1:], b)
		}
		b.Single[head.Name] = tokens[0]
		if matchRec(rest, tokens[1:], b) {
			return true
		}
		delete(b.Single, head.Name)
		return false

	case lang.SpreadVariable:
		if bound, ok := b.Spread[head.Name]; ok {
			if !spanEqual(bound, tokens) {
				return false
			}
			return matchRec(rest, tokens[len(bound):], b)
		}
		for width := 1; width <= len(tokens); width++ {
			span := tokens[:width]
			b.Spread[head.Name] = span
			if matchRec(rest, tokens[width:], b) {
				return true
			}
			delete(b.Spread, head.Name)
		}
		return false

	default:
		return false
	}
}

// spanEqual reports whether tokens begins with exactly the given span.
func spanEqual(span, tokens []token.Token) bool {
	if len(span) > len(tokens) {
		return false
	}
	for i, t := range span {
		if !t.Equal(tokens[i]) {
			return false
		}
	}
	return true
}
