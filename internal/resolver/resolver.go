// Package resolver provides the name->source lookup the loader drives: a
// single-operation capability with a chain combinator composing virtual
// and file-backed module sources, behind an explicit interface rather
// than ad-hoc dispatch.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcgru/pink/internal/diagnostics"
)

// Resolver maps a module name to its source text.
type Resolver interface {
	Resolve(name string) (string, error)
}

// Func adapts a plain function to the Resolver interface.
type Func func(name string) (string, error)

func (f Func) Resolve(name string) (string, error) { return f(name) }

// FileResolver looks up "<Root>/<name>.pink" on disk. name may contain
// path segments, including parent references.
type FileResolver struct {
	Root string
	Ext  string // defaults to ".pink"
}

// NewFileResolver builds a FileResolver rooted at dir.
func NewFileResolver(dir string) *FileResolver {
	return &FileResolver{Root: dir, Ext: ".pink"}
}

func (r *FileResolver) Resolve(name string) (string, error) {
	ext := r.Ext
	if ext == "" {
		ext = ".pink"
	}
	path := filepath.Join(r.Root, name+ext)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", diagnostics.New(diagnostics.ErrFileNotFound, name)
		}
		return "", diagnostics.Wrap(diagnostics.PhaseResolver, diagnostics.ErrIO, err, err.Error())
	}
	return string(data), nil
}

// MapResolver is an in-memory key/value store for host-embedded programs.
type MapResolver struct {
	sources map[string]string
}

// NewMapResolver builds a MapResolver from the given initial contents
// (may be nil).
func NewMapResolver(sources map[string]string) *MapResolver {
	m := &MapResolver{sources: make(map[string]string, len(sources))}
	for k, v := range sources {
		m.sources[k] = v
	}
	return m
}

// Insert adds or replaces a named source.
func (r *MapResolver) Insert(name, source string) {
	if r.sources == nil {
		r.sources = make(map[string]string)
	}
	r.sources[name] = source
}

func (r *MapResolver) Resolve(name string) (string, error) {
	src, ok := r.sources[name]
	if !ok {
		return "", diagnostics.New(diagnostics.ErrFileNotFound, name)
	}
	return src, nil
}

// chainResolver tries primary, falling back to secondary on any error. The
// error surfaced on double failure is secondary's.
type chainResolver struct {
	primary   Resolver
	secondary Resolver
}

// Chain composes two resolvers: a's result wins, falling back to b. The
// combinator is associative, so Chain(Chain(a, b), c) and
// Chain(a, Chain(b, c)) resolve identically; composition order still
// decides lookup precedence among non-associative groupings.
func Chain(a, b Resolver) Resolver {
	return &chainResolver{primary: a, secondary: b}
}

func (c *chainResolver) Resolve(name string) (string, error) {
	if src, err := c.primary.Resolve(name); err == nil {
		return src, nil
	}
	return c.secondary.Resolve(name)
}

func (c *chainResolver) String() string {
	return fmt.Sprintf("chain(%v -> %v)", c.primary, c.secondary)
}
