// Package eval drives neighbour enumeration and the rewrite-graph search:
// from an input expression it enumerates every reachable form and selects
// the smallest as the canonical result.
package eval

import (
	"time"

	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/rewrite"
)

// LowerNeighbours returns every distinct expression obtainable from expr by
// choosing a contiguous window of any size at any start position and
// splicing in the result of the first definition (in defs order) whose
// lowering applies there. Only the first matching definition per window is
// used - this breaks ties deterministically and bounds the branching
// factor.
func LowerNeighbours(defs []lang.Definition, expr lang.Expression) []lang.Expression {
	var neighbours []lang.Expression

	for size := 1; size <= len(expr); size++ {
		for start := 0; start+size <= len(expr); start++ {
			window := expr[start : start+size]
			for _, d := range defs {
				lowered, ok := rewrite.Lower(d, window)
				if !ok {
					continue
				}
				spliced := splice(expr, start, size, lowered)
				neighbours = append(neighbours, spliced)
				break // first matching definition per window only
			}
		}
	}

	return neighbours
}

func splice(expr lang.Expression, start, size int, replacement lang.Expression) lang.Expression {
	out := make(lang.Expression, 0, len(expr)-size+len(replacement))
	out = append(out, expr[:start]...)
	out = append(out, replacement...)
	out = append(out, expr[start+size:]...)
	return out
}

// Observer is invoked once per newly visited expression during Search.
// elapsed is wall-clock time since the search began. Returning a non-nil
// error stops the search early (used by WithStepCap / WithDeadline); the
// evaluator's own correctness contract never requires an error return.
type Observer func(step int, elapsed time.Duration, visited map[string]lang.Expression) error

// Result is the outcome of a Search: the visited set (complete unless the
// observer stopped the search early) and the observer's error, if any. The
// canonical minimum is not stored here; Min computes it from Visited.
type Result struct {
	Visited map[string]lang.Expression
	Err     error
}

// Search performs graph exploration from start: pop an expression from the
// frontier, skip it if already visited, otherwise mark it visited, compute
// its lower neighbours, push them, and invoke observer. Frontier discipline
// isn't fixed by any invariant; this implementation uses a LIFO stack.
func Search(defs []lang.Definition, start lang.Expression, observer Observer) Result {
	visited := make(map[string]lang.Expression)
	frontier := []lang.Expression{start}
	begin := time.Now()
	step := 0

	for len(frontier) > 0 {
		n := len(frontier) - 1
		cur := frontier[n]
		frontier = frontier[:n]

		key := cur.Key()
		if _, seen := visited[key]; seen {
			continue
		}
		visited[key] = cur
		step++

		if observer != nil {
			if err := observer(step, time.Since(begin), visited); err != nil {
				return Result{Visited: visited, Err: err}
			}
		}

		frontier = append(frontier, LowerNeighbours(defs, cur)...)
	}

	return Result{Visited: visited}
}

// Eval returns the canonical minimum of start's reachable forms: the
// smallest element, under Expression.Less, of the visited set returned by
// Search. start is always visited, so the result is always well-defined.
func Eval(defs []lang.Definition, start lang.Expression) (lang.Expression, map[string]lang.Expression) {
	result := Search(defs, start, nil)
	return Min(result.Visited), result.Visited
}

// Min returns the canonical minimum expression in visited, under
// Expression.Less. Exported so callers that drive Search directly (the
// engine package's debug/streaming path) don't re-derive this scan.
func Min(visited map[string]lang.Expression) lang.Expression {
	var min lang.Expression
	first := true
	for _, e := range visited {
		if first || e.Less(min) {
			min = e
			first = false
		}
	}
	return min
}
