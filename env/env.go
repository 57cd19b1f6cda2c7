// Package env implements the definition environment: the mapping from
// declaration name to decl.Decl that the three reducers consult.
package env

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/pcc-lang/kernel/decl"
)

// Env is a layered environment: a lookup first consults this scope's own
// table, then its parent, and so on, the same parent-chained scoping a
// lexical scope chain uses. Fetch on the root, with no parent, is exactly
// the flat-map case.
//
// Env is immutable from the point of view of a reduction: Declare mutates
// the receiver's own table in place (declarations accumulate as a caller
// builds up a session), but nothing in package reduce ever calls it.
// Reducers only ever read through Fetch.
type Env struct {
	parent *Env
	decls  map[string]decl.Decl
}

// New returns an empty, parentless Env.
func New() *Env {
	return &Env{decls: make(map[string]decl.Decl)}
}

// Child returns a new Env scoped under e: a Fetch that misses in the
// child falls through to e.
func (e *Env) Child() *Env {
	return &Env{parent: e, decls: make(map[string]decl.Decl)}
}

// Declare adds or replaces d in e's own table, keyed by d.DeclName(), and
// returns e for chaining.
func (e *Env) Declare(d decl.Decl) *Env {
	e.decls[d.DeclName()] = d
	return e
}

// Fetch implements decl.Lookup: it looks in e's own table, then walks up
// through each parent, and reports (nil, false) if no scope in the chain
// has declared name.
func (e *Env) Fetch(name string) (decl.Decl, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if d, ok := scope.decls[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// FetchLocal looks only in e's own table, ignoring parents.
func (e *Env) FetchLocal(name string) (decl.Decl, bool) {
	d, ok := e.decls[name]
	return d, ok
}

// Names returns the names declared directly in e's own table (not its
// parents), sorted for deterministic iteration.
func (e *Env) Names() []string {
	names := maps.Keys(e.decls)
	slices.Sort(names)
	return names
}

var _ decl.Lookup = (*Env)(nil)
