// Package engine ties the parser, loader and evaluator together behind the
// small surface the REPL and host binding both need: parse an expression
// against a Runtime's domain/reserved, then evaluate it.
package engine

import (
	"github.com/mcgru/pink/internal/eval"
	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/loader"
	"github.com/mcgru/pink/internal/parser"
	"github.com/mcgru/pink/internal/resolver"
)

// Engine wraps a loaded Runtime.
type Engine struct {
	Runtime *lang.Runtime
}

// Intrinsic builds an Engine with only the intrinsic structure loaded -
// the REPL's starting point when no entry module is given.
func Intrinsic() *Engine {
	return &Engine{Runtime: lang.NewRuntime()}
}

// Load resolves and loads root through r, returning an Engine wrapping the
// assembled Runtime.
func Load(r resolver.Resolver, root string) (*Engine, error) {
	rt, err := loader.New(r).Load(root)
	if err != nil {
		return nil, err
	}
	return &Engine{Runtime: rt}, nil
}

// ParseExpression tokenises text against the Engine's current
// domain/reserved view.
func (e *Engine) ParseExpression(text string) (lang.Expression, error) {
	return parser.CompileExpression(text, e.Runtime.Domain(), e.Runtime.Reserved())
}

// Eval parses and evaluates text, returning the canonical minimum and the
// full visited set.
func (e *Engine) Eval(text string) (lang.Expression, map[string]lang.Expression, error) {
	expr, err := e.ParseExpression(text)
	if err != nil {
		return nil, nil, err
	}
	result, visited := eval.Eval(e.Runtime.Definitions(), expr)
	return result, visited, nil
}

// Search runs the full graph search, invoking observer per newly visited
// expression - used by debug mode and the host binding's progress stream.
func (e *Engine) Search(text string, observer eval.Observer) (lang.Expression, eval.Result, error) {
	expr, err := e.ParseExpression(text)
	if err != nil {
		return nil, eval.Result{}, err
	}
	result := eval.Search(e.Runtime.Definitions(), expr, observer)
	return eval.Min(result.Visited), result, nil
}
