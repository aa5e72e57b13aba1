// Package parser turns pink source text into the pieces a loader needs:
// domain/reserve/use clauses, raw definition bodies, and - once a module's
// full domain/reserved context is known - compiled patterns and
// expressions.
package parser

import (
	"strings"

	"github.com/mcgru/pink/internal/diagnostics"
	"github.com/mcgru/pink/internal/lexer"
)

// RawDefinition is one `LHS => RHS ;` or `LHS <=> RHS ;` body, split but
// not yet tokenised into patterns (that needs the module's resolved
// domain/reserved sets, built after dependencies are loaded).
type RawDefinition struct {
	HeadText      string
	TailText      string
	Bidirectional bool
	Line, Col     int
}

// Header is the result of scanning a module's domain/reserve/use clauses
// and splitting its definitions, in source order.
type Header struct {
	Domain      []string
	Reserved    []string
	Use         []string
	Definitions []RawDefinition
}

// ParseHeader scans source (domain { ... } reserve { ... } use { ... }
// followed by zero or more definitions) into a Header. Each clause is
// optional and, when present, must appear in that order.
func ParseHeader(source string) (*Header, error) {
	lx := lexer.New(source)
	h := &Header{}

	lx.SkipSpace()
	if lx.ConsumeKeyword("domain") {
		items, err := lx.ReadBraceList()
		if err != nil {
			return nil, err
		}
		h.Domain = items
		lx.SkipSpace()
	}

	if lx.ConsumeKeyword("reserve") {
		items, err := lx.ReadBraceList()
		if err != nil {
			return nil, err
		}
		h.Reserved = items
		lx.SkipSpace()
	}

	if lx.ConsumeKeyword("use") {
		items, err := lx.ReadBraceList()
		if err != nil {
			return nil, err
		}
		h.Use = items
		lx.SkipSpace()
	}

	for {
		lx.SkipSpace()
		if lx.AtEOF() {
			break
		}
		line, col := lx.Line(), lx.Col()
		body, err := lx.ReadUntil(';')
		if err != nil {
			return nil, err
		}
		body = strings.TrimSpace(body)
		if body == "" {
			continue
		}
		head, tail, bidi, err := splitDefinition(body)
		if err != nil {
			return nil, err
		}
		h.Definitions = append(h.Definitions, RawDefinition{
			HeadText: head, TailText: tail, Bidirectional: bidi, Line: line, Col: col,
		})
	}

	return h, nil
}

// splitDefinition splits a definition body on its single "=>", detecting a
// trailing '<' immediately before it as the bidirectional marker. More than
// one "=>" in a body is a malformed-source error.
func splitDefinition(body string) (head, tail string, bidirectional bool, err error) {
	if strings.Count(body, "=>") != 1 {
		return "", "", false, diagnostics.New(diagnostics.ErrMalformed, "expected exactly one '=>' in: "+body)
	}
	idx := strings.Index(body, "=>")
	head = body[:idx]
	tail = body[idx+2:]

	trimmedHead := strings.TrimRight(head, " \t")
	if strings.HasSuffix(trimmedHead, "<") {
		bidirectional = true
		head = strings.TrimRight(trimmedHead[:len(trimmedHead)-1], " \t")
	} else {
		head = strings.TrimSpace(head)
	}
	tail = strings.TrimSpace(tail)
	return head, tail, bidirectional, nil
}
