// Package loader assembles a Runtime by parsing a root module and
// recursively resolving its `use` dependencies through a Resolver,
// detecting cycles as it goes.
package loader

import (
	"errors"
	"path"
	"strings"

	"github.com/mcgru/pink/internal/diagnostics"
	"github.com/mcgru/pink/internal/lang"
	"github.com/mcgru/pink/internal/ordered"
	"github.com/mcgru/pink/internal/parser"
	"github.com/mcgru/pink/internal/resolver"
)

type state int

const (
	notSeen state = iota
	loading
	loaded
)

// Loader loads a module and its transitive dependencies into a Runtime.
type Loader struct {
	Resolver resolver.Resolver

	runtime *lang.Runtime
	states  map[string]state
}

// New builds a Loader backed by r.
func New(r resolver.Resolver) *Loader {
	return &Loader{Resolver: r}
}

// Load resolves name through the Loader's Resolver and returns the fully
// assembled Runtime: the partial-runtime None-marker is inserted (here,
// the "loading" state) before any recursive load, so cycles are caught on
// every path, not just some.
func (l *Loader) Load(name string) (*lang.Runtime, error) {
	l.runtime = lang.NewRuntime()
	l.states = map[string]state{lang.IntrinsicName: loaded}

	if err := l.load(name); err != nil {
		return nil, err
	}
	return l.runtime, nil
}

func (l *Loader) load(name string) error {
	switch l.states[name] {
	case loaded:
		return nil
	case loading:
		return diagnostics.CircularDependency(name)
	}

	l.states[name] = loading

	source, err := l.Resolver.Resolve(name)
	if err != nil {
		return err
	}

	header, err := parser.ParseHeader(source)
	if err != nil {
		return err
	}

	baseDir := path.Dir(name)
	for _, dep := range header.Use {
		resolved := resolveImportPath(baseDir, dep)
		if err := l.load(resolved); err != nil {
			var cyc *diagnostics.CycleError
			if errors.As(err, &cyc) {
				return cyc.Prepend(name)
			}
			return err
		}
	}

	ownDomain := ordered.NewSet(header.Domain...)
	ownReserved := ordered.NewSet(header.Reserved...)

	// Cross-module references resolve against this module's own sets
	// combined with every dependency already loaded into the runtime.
	combinedDomain := ordered.Union(ownDomain, l.runtime.Domain())
	combinedReserved := ordered.Union(ownReserved, l.runtime.Reserved())

	defs := make([]lang.Definition, 0, len(header.Definitions)*2)
	for _, raw := range header.Definitions {
		high := parser.CompilePattern(raw.HeadText, combinedDomain, combinedReserved)
		low := parser.CompilePattern(raw.TailText, combinedDomain, combinedReserved)
		d := lang.Definition{High: high, Low: low}
		defs = append(defs, d)
		if raw.Bidirectional {
			defs = append(defs, d.Reversed())
		}
	}

	structure, err := lang.NewStructure(name, ownDomain, ownReserved, defs)
	if err != nil {
		return err
	}

	l.runtime.Insert(structure)
	l.states[name] = loaded
	return nil
}

// resolveImportPath resolves a `use` clause's dependency name relative to
// the importing module's own name: a leading "." makes it relative to
// baseDir (the importing module's name with its last slash-separated
// segment dropped), joined and cleaned as a resolver key - not a
// filesystem path, since module names are plain "/"-separated identifiers
// (e.g. "std/peano"), not paths rooted in any particular OS or Resolver's
// storage layout. Anything not starting with "." is an absolute module
// name, resolved as-is.
func resolveImportPath(baseDir, importPath string) string {
	if !strings.HasPrefix(importPath, ".") {
		return importPath
	}
	return path.Join(baseDir, importPath)
}
