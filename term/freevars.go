package term

import "golang.org/x/exp/slices"

// nameSet is the internal representation of a set of variable names; the
// exported FreeVars flattens one of these into a sorted, deduplicated
// slice for callers who want a deterministic, comparable result.
type nameSet map[string]struct{}

func (s nameSet) add(name string) { s[name] = struct{}{} }

func (s nameSet) union(other nameSet) nameSet {
	for name := range other {
		s.add(name)
	}
	return s
}

func (s nameSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

// freeVarSet computes the exact set of free variables of t, descending
// under binders only for the body with the bound variable removed, and
// never treating a Ref's Name (a declaration name, not a local variable)
// as a free occurrence.
func freeVarSet(t Term) nameSet {
	switch n := t.(type) {
	case Variable:
		return nameSet{n.Name: struct{}{}}
	case Sort:
		return nameSet{}
	case App:
		return freeVarSet(n.Fun).union(freeVarSet(n.Arg))
	case Ref:
		fv := nameSet{}
		for _, a := range n.Args {
			fv.union(freeVarSet(a))
		}
		return fv
	case Lambda, Product:
		bv, _ := asBinder(t)
		fv := freeVarSet(bv.Dom)
		body := freeVarSet(bv.Body)
		delete(body, bv.Var)
		return fv.union(body)
	}
	panic(&Fault{Code: BadTerm, Term: t, Msg: "freeVarSet: unrecognized term shape"})
}

// FreeVars returns the exact, sorted, deduplicated set of names occurring
// free in t.
func FreeVars(t Term) []string {
	set := freeVarSet(t)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsFreeIn reports whether name occurs free in t.
func IsFreeIn(name string, t Term) bool {
	return freeVarSet(t).has(name)
}
