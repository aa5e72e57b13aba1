// Package diagnostics defines the typed error taxonomy surfaced by the
// parser, the resolver chain and the runtime loader.
package diagnostics

import "fmt"

// Phase identifies which stage of loading raised an error.
type Phase string

const (
	PhaseParser   Phase = "parser"
	PhaseResolver Phase = "resolver"
	PhaseLoader   Phase = "loader"
)

// ErrorCode is a stable identifier for one error template, mirroring the
// L/P/A-style codes a diagnostics package in this corpus assigns per phase.
type ErrorCode string

const (
	// Parser errors
	ErrExpected     ErrorCode = "P001" // expected a specific keyword/literal, found something else
	ErrUnknownToken ErrorCode = "P002" // expression parser could not advance past input
	ErrMalformed    ErrorCode = "P003" // more than one '=>' in a definition body

	// Structure errors
	ErrDomainReservedOverlap ErrorCode = "S001" // a name is in both domain and reserved sets

	// Resolver / loader errors
	ErrFileNotFound       ErrorCode = "R001"
	ErrIO                 ErrorCode = "R002"
	ErrCircularDependency ErrorCode = "L001"
)

var templates = map[ErrorCode]string{
	ErrExpected:              "expected %s, found %s",
	ErrUnknownToken:          "unknown token: %q",
	ErrMalformed:             "malformed definition: %s",
	ErrDomainReservedOverlap: "%q appears in both domain and reserved sets",
	ErrFileNotFound:          "module %q not found",
	ErrIO:                    "%s",
	ErrCircularDependency:    "circular dependency: %s",
}

// Error is a single typed diagnostic. It always satisfies the standard
// error interface; callers that need the structured code use errors.As.
type Error struct {
	Code  ErrorCode
	Phase Phase
	Args  []interface{}
	Line  int
	Col   int
	File  string
	Cause error
}

func (e *Error) Error() string {
	template, ok := templates[e.Code]
	if !ok {
		template = string(e.Code)
	}
	message := fmt.Sprintf(template, e.Args...)

	prefix := ""
	if e.File != "" {
		prefix = e.File + ": "
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s%d:%d: [%s] %s", prefix, e.Line, e.Col, e.Code, message)
	}
	return fmt.Sprintf("%s[%s] %s", prefix, e.Code, message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a diagnostic with no location information.
func New(code ErrorCode, args ...interface{}) *Error {
	return &Error{Code: code, Args: args}
}

// At attaches a line/column to a diagnostic, as the lexer does for the
// errors it raises while scanning module source.
func At(code ErrorCode, line, col int, args ...interface{}) *Error {
	return &Error{Code: code, Line: line, Col: col, Args: args}
}

// Wrap attaches a phase and an underlying cause, used by the resolver chain
// and loader to surface I/O failures without losing the original error.
func Wrap(phase Phase, code ErrorCode, cause error, args ...interface{}) *Error {
	return &Error{Code: code, Phase: phase, Args: args, Cause: cause}
}

// CycleError reports a use-graph cycle. Cycle accumulates module names as
// the loader's recursion unwinds: it starts as the single
// repeated name and grows one name at a time until it reaches the root.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return (&Error{Code: ErrCircularDependency, Args: []interface{}{joinArrow(e.Cycle)}}).Error()
}

func joinArrow(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += " -> "
		}
		out += name
	}
	return out
}

// CircularDependency builds a CycleError starting from the single name
// where the cycle was first detected (the dependency already being loaded).
func CircularDependency(name string) *CycleError {
	return &CycleError{Cycle: []string{name}}
}

// Prepend grows the cycle path with name, as the loader's recursive calls
// for each dependent module unwind back toward the root.
func (e *CycleError) Prepend(name string) *CycleError {
	cycle := make([]string, 0, len(e.Cycle)+1)
	cycle = append(cycle, name)
	cycle = append(cycle, e.Cycle...)
	return &CycleError{Cycle: cycle}
}
