package eval

import (
	"errors"
	"time"

	"github.com/mcgru/pink/internal/lang"
)

// ErrStepCapExceeded is returned by an Observer built with WithStepCap once
// the visited set has grown past the configured limit. It is a host-side
// bound, not part of the evaluator's correctness contract.
var ErrStepCapExceeded = errors.New("eval: step cap exceeded")

// ErrDeadlineExceeded is returned by an Observer built with WithDeadline
// once wall-clock time since the search began exceeds the configured
// duration.
var ErrDeadlineExceeded = errors.New("eval: deadline exceeded")

// WithStepCap wraps inner (which may be nil) with a bound on the number of
// visited steps a Search is allowed to take.
func WithStepCap(limit int, inner Observer) Observer {
	return func(step int, elapsed time.Duration, visited map[string]lang.Expression) error {
		if inner != nil {
			if err := inner(step, elapsed, visited); err != nil {
				return err
			}
		}
		if step > limit {
			return ErrStepCapExceeded
		}
		return nil
	}
}

// WithDeadline wraps inner (which may be nil) with a bound on wall-clock
// time since the search began.
func WithDeadline(d time.Duration, inner Observer) Observer {
	return func(step int, elapsed time.Duration, visited map[string]lang.Expression) error {
		if inner != nil {
			if err := inner(step, elapsed, visited); err != nil {
				return err
			}
		}
		if elapsed > d {
			return ErrDeadlineExceeded
		}
		return nil
	}
}
