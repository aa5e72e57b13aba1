// Package lang holds the value types the rest of the engine operates on:
// patterns, expressions, definitions, structures and the assembled runtime.
package lang

import "github.com/mcgru/pink/internal/token"

// PatternKind distinguishes the three pattern-token shapes.
type PatternKind int

const (
	// Concrete matches one exact token.
	Concrete PatternKind = iota
	// Variable binds exactly one token.
	Variable
	// SpreadVariable binds a non-empty contiguous span of tokens.
	SpreadVariable
)

// PatternToken is one element of a Definition's high or low side.
type PatternToken struct {
	Kind  PatternKind
	Tok   token.Token // set when Kind == Concrete
	Name  string      // set when Kind == Variable or SpreadVariable
}

// NewConcrete wraps a literal token match.
func NewConcrete(t token.Token) PatternToken {
	return PatternToken{Kind: Concrete, Tok: t}
}

// NewVariable builds a single-token capture.
func NewVariable(name string) PatternToken {
	return PatternToken{Kind: Variable, Name: name}
}

// NewSpread builds a contiguous-span capture.
func NewSpread(name string) PatternToken {
	return PatternToken{Kind: SpreadVariable, Name: name}
}

func (p PatternToken) String() string {
	switch p.Kind {
	case Concrete:
		return p.Tok.String()
	case SpreadVariable:
		return p.Name + "..."
	default:
		return p.Name
	}
}

// Pattern is an ordered sequence of pattern tokens.
type Pattern []PatternToken
