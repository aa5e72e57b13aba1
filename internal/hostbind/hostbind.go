// Package hostbind exposes a streaming evaluate/progress interface over the
// engine for an embedding host runtime: insert in-memory sources, set the
// root module, then drive concurrent evaluations with progress callbacks.
// a uuid correlation id is attached per call so a host can match
// progress/finish callbacks back to the evaluate() invocation that
// produced them.
package hostbind

import (
	"time"

	"github.com/google/uuid"

	"github.com/mcgru/pink/internal/engine"
	"github.com/mcgru/pink/internal/eval"
	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/resolver"
)

// Progress is delivered to an evaluate() call's on_progress callback: the
// current smallest expression seen so far and elapsed time since the call
// began.
type Progress struct {
	ID       uuid.UUID
	Step     int
	Elapsed  time.Duration
	Smallest lang.Expression
}

// Finish is delivered exactly once to an evaluate() call's on_finish
// callback, whether it completed normally or stopped early via a bound.
type Finish struct {
	ID     uuid.UUID
	Result lang.Expression
	Err    error
}

// Handle is a host-facing binding over an Engine's runtime: it accepts
// in-memory source inserts and a root module, then evaluates concurrently.
// A Handle is safe for concurrent Evaluate calls once SetRoot has
// succeeded, since the Runtime is never mutated after load.
type Handle struct {
	sources *resolver.MapResolver
	engine  *engine.Engine
}

// New builds a Handle with an empty in-memory source map and no root
// loaded yet.
func New() *Handle {
	return &Handle{sources: resolver.NewMapResolver(nil)}
}

// Insert populates the in-memory resolver with a named source, for hosts
// that supply module text directly rather than through a file tree.
func (h *Handle) Insert(name, source string) {
	h.sources.Insert(name, source)
}

// SetRoot loads name (and its transitive `use` dependencies) through the
// Handle's in-memory resolver, replacing any previously loaded runtime.
func (h *Handle) SetRoot(name string) error {
	e, err := engine.Load(h.sources, name)
	if err != nil {
		return err
	}
	h.engine = e
	return nil
}

// OnProgress is invoked with each newly visited expression during an
// Evaluate call.
type OnProgress func(Progress)

// OnFinish is invoked exactly once when an Evaluate call completes.
type OnFinish func(Finish)

// Evaluate parses expressionText against the current runtime and runs the
// evaluator on its own goroutine, reporting progress and the final result
// through the given callbacks. The returned uuid.UUID lets the host
// correlate callbacks from concurrent Evaluate calls against the same
// Handle.
func (h *Handle) Evaluate(expressionText string, onProgress OnProgress, onFinish OnFinish) uuid.UUID {
	id := uuid.New()

	expr, err := h.engine.ParseExpression(expressionText)
	if err != nil {
		go func() {
			if onFinish != nil {
				onFinish(Finish{ID: id, Err: err})
			}
		}()
		return id
	}

	defs := h.engine.Runtime.Definitions()

	go func() {
		var observer eval.Observer
		if onProgress != nil {
			observer = func(step int, elapsed time.Duration, visited map[string]lang.Expression) error {
				onProgress(Progress{
					ID:       id,
					Step:     step,
					Elapsed:  elapsed,
					Smallest: eval.Min(visited),
				})
				return nil
			}
		}

		result := eval.Search(defs, expr, observer)
		min := eval.Min(result.Visited)

		if onFinish != nil {
			onFinish(Finish{ID: id, Result: min, Err: result.Err})
		}
	}()

	return id
}
