package parser

import (
	"strings"

	"github.com/mcgru/pink/internal/diagnostics"
	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/ordered"
	"github.com/mcgru/pink/internal/token"
)

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// scanConcrete tries reserved literals first, then domain atoms, for a
// greedy longest-match at text[pos:]. This precedence - reserved beats
// domain - reserved literals take precedence over domain atoms.
func scanConcrete(text string, pos int, domain, reserved *ordered.Set) (token.Token, int, bool) {
	remaining := text[pos:]
	if lit, ok := reserved.LongestPrefixMatch(remaining); ok {
		return token.NewLiteral(lit), len(lit), true
	}
	if atom, ok := domain.LongestPrefixMatch(remaining); ok {
		return token.NewElement(atom), len(atom), true
	}
	return token.Token{}, 0, false
}

// CompilePattern tokenises pattern text against domain/reserved: reserved
// literals beat domain atoms beat variables; a run
// of identifier characters becomes a Variable, or a SpreadVariable if
// immediately followed by "..."; anything else falls back to a
// single-character variable name.
func CompilePattern(text string, domain, reserved *ordered.Set) lang.Pattern {
	var out lang.Pattern
	i := 0
	for i < len(text) {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) {
			break
		}

		if tok, length, ok := scanConcrete(text, i, domain, reserved); ok {
			out = append(out, lang.NewConcrete(tok))
			i += length
			continue
		}

		if isIdentByte(text[i]) {
			start := i
			for i < len(text) && isIdentByte(text[i]) {
				i++
			}
			name := text[start:i]
			if strings.HasPrefix(text[i:], "...") {
				i += 3
				out = append(out, lang.NewSpread(name))
			} else {
				out = append(out, lang.NewVariable(name))
			}
			continue
		}

		// Fallback: consume one character as a single-character variable.
		out = append(out, lang.NewVariable(text[i:i+1]))
		i++
	}
	return out
}

// CompileExpression tokenises expression text against domain/reserved with
// no variable support: a prefix that is neither a known reserved literal
// nor a domain atom is an UnknownToken error.
func CompileExpression(text string, domain, reserved *ordered.Set) (lang.Expression, error) {
	var out lang.Expression
	i := 0
	for i < len(text) {
		for i < len(text) && isSpace(text[i]) {
			i++
		}
		if i >= len(text) {
			break
		}

		if tok, length, ok := scanConcrete(text, i, domain, reserved); ok {
			out = append(out, tok)
			i += length
			continue
		}

		start := i
		for i < len(text) && !isSpace(text[i]) {
			i++
		}
		if i == start {
			i++
		}
		return nil, diagnostics.New(diagnostics.ErrUnknownToken, text[start:i])
	}
	return out, nil
}
