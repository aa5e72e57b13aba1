package lang

import "github.com/mcgru/pink/internal/ordered"

// Runtime is the loaded collection of named structures, always including
// the intrinsic one. Insertion order is tracked separately from the map so
// that the "structure-map-iteration order" views below are reproducible
// across runs, rather than subject to Go's randomized map iteration.
type Runtime struct {
	structures map[string]*Structure
	order      []string
}

// NewRuntime builds a Runtime seeded with only the intrinsic structure.
func NewRuntime() *Runtime {
	r := &Runtime{structures: make(map[string]*Structure)}
	r.Insert(Intrinsic())
	return r
}

// Insert adds or replaces a structure under its own name, recording
// insertion order the first time a name is seen.
func (r *Runtime) Insert(s *Structure) {
	if _, exists := r.structures[s.Name]; !exists {
		r.order = append(r.order, s.Name)
	}
	r.structures[s.Name] = s
}

// Get looks up a structure by name.
func (r *Runtime) Get(name string) (*Structure, bool) {
	s, ok := r.structures[name]
	return s, ok
}

// Has reports whether name has already been loaded.
func (r *Runtime) Has(name string) bool {
	_, ok := r.structures[name]
	return ok
}

// Names returns every loaded structure name in insertion order.
func (r *Runtime) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Domain returns the union of every structure's domain, as a sorted set.
func (r *Runtime) Domain() *ordered.Set {
	sets := make([]*ordered.Set, 0, len(r.order))
	for _, name := range r.order {
		sets = append(sets, r.structures[name].Domain)
	}
	return ordered.Union(sets...)
}

// Reserved returns the union of every structure's reserved set, as a
// sorted set.
func (r *Runtime) Reserved() *ordered.Set {
	sets := make([]*ordered.Set, 0, len(r.order))
	for _, name := range r.order {
		sets = append(sets, r.structures[name].Reserved)
	}
	return ordered.Union(sets...)
}

// Definitions returns the concatenation of every structure's definitions,
// in insertion order. The evaluator's "first matching definition" tie-break
// is defined over this order.
func (r *Runtime) Definitions() []Definition {
	var out []Definition
	for _, name := range r.order {
		out = append(out, r.structures[name].Definitions...)
	}
	return out
}
