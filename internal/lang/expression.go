package lang

import "github.com/mcgru/pink/internal/token"

// Expression is an ordered sequence of tokens. Equality is positional.
type Expression []token.Token

// Equal reports whether e and o hold the same tokens in the same order.
func (e Expression) Equal(o Expression) bool {
	if len(e) != len(o) {
		return false
	}
	for i := range e {
		if !e[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Less implements the canonical expression order: shorter sequences are
// smaller; ties are broken lexicographically over tokens. This is the
// order "smallest" refers to throughout evaluation.
func (e Expression) Less(o Expression) bool {
	if len(e) != len(o) {
		return len(e) < len(o)
	}
	for i := range e {
		if e[i].Equal(o[i]) {
			continue
		}
		return e[i].Less(o[i])
	}
	return false
}

// Key returns a string uniquely identifying e's token sequence, suitable
// for use as a map key in the evaluator's visited set.
func (e Expression) Key() string {
	buf := make([]byte, 0, len(e)*4)
	for _, t := range e {
		if t.Kind == token.Literal {
			buf = append(buf, 'L')
		} else {
			buf = append(buf, 'E')
		}
		buf = append(buf, ':')
		buf = append(buf, t.Name...)
		buf = append(buf, '\x00')
	}
	return string(buf)
}

// Clone returns an independent copy of e.
func (e Expression) Clone() Expression {
	out := make(Expression, len(e))
	copy(out, e)
	return out
}

func (e Expression) String() string {
	out := ""
	for i, t := range e {
		if i > 0 {
			out += " "
		}
		out += t.Name
	}
	return out
}

// Min returns the smallest Expression in set under the canonical order.
// set must be non-empty.
func Min(set []Expression) Expression {
	min := set[0]
	for _, e := range set[1:] {
		if e.Less(min) {
			min = e
		}
	}
	return min
}
