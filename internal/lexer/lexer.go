// Package lexer provides the low-level character scanner the parser drives
// directly: skipping whitespace, reading brace-delimited comma lists, and
// pulling raw text up to a delimiter. There is no separate token stream for
// pattern/expression text - that text is tokenised later, against the
// domain/reserved sets in scope, by the parser itself.
package lexer

import "github.com/mcgru/pink/internal/diagnostics"

// Lexer scans source text character by character, tracking line/column for
// diagnostics, in the style of a conventional hand-rolled scanner: a
// current position, a read position one ahead, and the byte under
// examination.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New strips comments (# to end-of-line) and returns a Lexer positioned at
// the first byte of the remaining source.
func New(source string) *Lexer {
	l := &Lexer{input: stripComments(source), line: 1, column: 0}
	l.readChar()
	return l
}

// stripComments removes everything from a '#' to the next
// newline (or end of input), leaving the newline itself intact so line
// numbers stay accurate.
func stripComments(src string) string {
	out := make([]byte, 0, len(src))
	inComment := false
	for i := 0; i < len(src); i++ {
		c := src[i]
		if c == '#' {
			inComment = true
			continue
		}
		if c == '\n' {
			inComment = false
		}
		if inComment {
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// Line and Col report the scanner's current position, for attaching to
// diagnostics.
func (l *Lexer) Line() int { return l.line }
func (l *Lexer) Col() int  { return l.column }

// AtEOF reports whether the scanner has consumed all input.
func (l *Lexer) AtEOF() bool { return l.ch == 0 }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// SkipSpace advances past any run of whitespace.
func (l *Lexer) SkipSpace() {
	for isSpace(l.ch) {
		l.readChar()
	}
}

// PeekKeyword reports whether the upcoming bytes spell kw as a standalone
// word (not a prefix of a longer identifier), without consuming input.
func (l *Lexer) PeekKeyword(kw string) bool {
	if l.position+len(kw) > len(l.input) {
		return false
	}
	if l.input[l.position:l.position+len(kw)] != kw {
		return false
	}
	after := l.position + len(kw)
	if after < len(l.input) && isIdentByte(l.input[after]) {
		return false
	}
	return true
}

// ConsumeKeyword consumes kw if it matches at the current position,
// reporting whether it did.
func (l *Lexer) ConsumeKeyword(kw string) bool {
	if !l.PeekKeyword(kw) {
		return false
	}
	for range kw {
		l.readChar()
	}
	return true
}

// ReadIdentifier consumes a run of identifier bytes (alphanumeric plus
// underscore) and returns it.
func (l *Lexer) ReadIdentifier() string {
	start := l.position
	for isIdentByte(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// Expect consumes a single expected byte, returning a diagnostics.Error if
// the current byte doesn't match.
func (l *Lexer) Expect(b byte) error {
	if l.ch != b {
		return diagnostics.At(diagnostics.ErrExpected, l.line, l.column, string(b), string(rune(l.ch)))
	}
	l.readChar()
	return nil
}

// ReadBraceList reads a '{' ... '}' comma-separated list of bare words,
// used for domain/reserve/use clauses. Each item runs up to the next comma
// or closing brace and is trimmed of surrounding whitespace, so reserved
// items that are punctuation (e.g. "+", "(") are read correctly alongside
// identifier items.
func (l *Lexer) ReadBraceList() ([]string, error) {
	l.SkipSpace()
	if err := l.Expect('{'); err != nil {
		return nil, err
	}
	l.SkipSpace()

	var items []string
	for {
		if l.ch == '}' {
			break
		}
		item, err := l.readListItem()
		if err != nil {
			return nil, err
		}
		if item != "" {
			items = append(items, item)
		}
		l.SkipSpace()
		if l.ch == ',' {
			l.readChar()
			l.SkipSpace()
			continue
		}
		break
	}

	l.SkipSpace()
	if err := l.Expect('}'); err != nil {
		return nil, err
	}
	return items, nil
}

func (l *Lexer) readListItem() (string, error) {
	start := l.position
	for l.ch != 0 && l.ch != ',' && l.ch != '}' {
		l.readChar()
	}
	if l.ch == 0 {
		return "", diagnostics.At(diagnostics.ErrExpected, l.line, l.column, "}", "end of input")
	}
	raw := l.input[start:l.position]
	return trimSpace(raw), nil
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && isSpace(s[i]) {
		i++
	}
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

// ReadUntil consumes and returns raw text up to (not including) the next
// occurrence of stop, advancing past stop itself. Used to grab a definition
// body up to its terminating ';'.
func (l *Lexer) ReadUntil(stop byte) (string, error) {
	start := l.position
	for l.ch != stop {
		if l.ch == 0 {
			return "", diagnostics.At(diagnostics.ErrExpected, l.line, l.column, string(stop), "end of input")
		}
		l.readChar()
	}
	raw := l.input[start:l.position]
	l.readChar() // consume stop
	return raw, nil
}
