package env

import "github.com/pcc-lang/kernel/decl"

// Local is a lightweight, map-only environment: a flat table with no
// layered parent lookup. The delta reducer's local mode consults a Local
// instead of an Env so that parse-time resolution against a scratch table
// can reuse the same delta machinery without paying for, or accidentally
// depending on, layered scoping.
type Local map[string]decl.Decl

// Fetch implements decl.Lookup.
func (l Local) Fetch(name string) (decl.Decl, bool) {
	d, ok := l[name]
	return d, ok
}

// Declare adds or replaces d in l, keyed by d.DeclName().
func (l Local) Declare(d decl.Decl) {
	l[d.DeclName()] = d
}

var _ decl.Lookup = Local(nil)
