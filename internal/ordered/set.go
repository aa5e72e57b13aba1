// Package ordered provides a small sorted-string-set used everywhere the
// engine needs deterministic iteration order: the parser's scanner depends
// on trying candidate literals/atoms in a fixed order so that which prefix
// wins when two names share one is reproducible across runs.
package ordered

import "sort"

// Set is a set of strings with deterministic, sorted iteration.
type Set struct {
	members []string
	index   map[string]struct{}
}

// NewSet builds a Set from the given names, de-duplicating and sorting them.
func NewSet(names ...string) *Set {
	s := &Set{index: make(map[string]struct{}, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name into the set, keeping members sorted.
func (s *Set) Add(name string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = struct{}{}
	i := sort.SearchStrings(s.members, name)
	s.members = append(s.members, "")
	copy(s.members[i+1:], s.members[i:])
	s.members[i] = name
}

// Contains reports whether name is a member.
func (s *Set) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of members.
func (s *Set) Len() int { return len(s.members) }

// Members returns the sorted member slice. Callers must not mutate it.
func (s *Set) Members() []string { return s.members }

// Union returns a new Set containing every member of every Set given (nil
// sets are skipped). Like any Set, the result is sorted, whatever the order
// of the inputs (used to build a Runtime's combined domain/reserved view).
func Union(sets ...*Set) *Set {
	out := NewSet()
	for _, s := range sets {
		if s == nil {
			continue
		}
		for _, m := range s.Members() {
			out.Add(m)
		}
	}
	return out
}

// LongestPrefixMatch scans s's members in sorted order and returns the
// longest one that is a prefix of text, with ok=true on success. Two
// distinct members that are both prefixes of text always differ in length,
// so the result does not depend on the scan order.
func (s *Set) LongestPrefixMatch(text string) (string, bool) {
	best := ""
	found := false
	for _, m := range s.members {
		if len(m) == 0 || len(m) > len(text) {
			continue
		}
		if text[:len(m)] == m && len(m) > len(best) {
			best = m
			found = true
		}
	}
	return best, found
}
