package term

import "github.com/samber/lo"

// Subst produces a term equal to t with free occurrences of v replaced by
// repl, avoiding capture.
func Subst(t Term, v string, repl Term) Term {
	return substAll(t, map[string]Term{v: repl})
}

// SubstAll is parallel substitution: every replacement in sigma is applied
// simultaneously, which is not the same as applying Subst once per entry
// (the replacements must not themselves be substituted into each other).
func SubstAll(t Term, sigma map[string]Term) Term {
	return substAll(t, sigma)
}

func substAll(t Term, sigma map[string]Term) Term {
	if len(sigma) == 0 {
		return t
	}
	switch n := t.(type) {
	case Variable:
		if repl, ok := sigma[n.Name]; ok {
			return repl
		}
		return t
	case Sort:
		return t
	case App:
		return App{Fun: substAll(n.Fun, sigma), Arg: substAll(n.Arg, sigma)}
	case Ref:
		args := lo.Map(n.Args, func(a Term, _ int) Term { return substAll(a, sigma) })
		return Ref{Name: n.Name, Args: args}
	case Lambda, Product:
		return substBinder(t, sigma)
	}
	panic(&Fault{Code: BadTerm, Term: t, Msg: "substAll: unrecognized term shape"})
}

// substBinder implements capture-avoiding substitution under a binder:
// restrict the substitution to the names actually free in the body (x can
// never survive that restriction, since it is excluded from
// free-variables(body) \ {x} by construction, so a binder that rebinds x
// shadows it for free); then either rename the bound variable out of the
// way of a colliding replacement, or substitute straight through. The
// domain lies outside the binder's scope, so it takes sigma unrestricted.
func substBinder(t Term, sigma map[string]Term) Term {
	bv, _ := asBinder(t)
	bodyFV := freeVarSet(bv.Body)
	restricted := restrict(sigma, bodyFV, bv.Var)
	newDom := substAll(bv.Dom, sigma)

	if len(restricted) == 0 {
		return bv.rebuild(bv.Var, newDom, bv.Body)
	}
	if rangeFreeVars(restricted).has(bv.Var) {
		fresh := freshen(bv.Var, bodyFV, rangeFreeVars(restricted))
		extended := extend(restricted, bv.Var, Variable{Name: fresh})
		newBody := substAll(bv.Body, extended)
		return bv.rebuild(fresh, newDom, newBody)
	}
	newBody := substAll(bv.Body, restricted)
	return bv.rebuild(bv.Var, newDom, newBody)
}

// restrict keeps only the entries of sigma whose key is free in the body
// and is not the bound variable itself.
func restrict(sigma map[string]Term, bodyFV nameSet, bound string) map[string]Term {
	out := make(map[string]Term, len(sigma))
	for k, v := range sigma {
		if k == bound {
			continue
		}
		if bodyFV.has(k) {
			out[k] = v
		}
	}
	return out
}

func extend(sigma map[string]Term, k string, v Term) map[string]Term {
	out := make(map[string]Term, len(sigma)+1)
	for k0, v0 := range sigma {
		out[k0] = v0
	}
	out[k] = v
	return out
}

func rangeFreeVars(sigma map[string]Term) nameSet {
	fv := nameSet{}
	for _, v := range sigma {
		fv.union(freeVarSet(v))
	}
	return fv
}
