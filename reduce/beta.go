package reduce

import "github.com/pcc-lang/kernel/term"

// Contract performs the explicit, no-search contraction of a single
// beta-redex: t must be exactly an application whose function position is
// a Lambda. It panics a *term.Fault(NotRedex) otherwise. Every caller
// within this package has already confirmed the shape before calling
// Contract; an external caller reaching NotRedex has made a genuine
// mistake.
func Contract(t term.Term) term.Term {
	app, ok := t.(term.App)
	if !ok {
		term.Raise(term.NotRedex, t, "beta-reduce: not an application")
	}
	lam, ok := app.Fun.(term.Lambda)
	if !ok {
		term.Raise(term.NotRedex, t, "beta-reduce: function position is not a lambda")
	}
	return term.Subst(lam.Body, lam.Var, app.Arg)
}

// betaStep implements a deterministic, leftmost-outermost, binder-first
// search order. It reduces at most one redex.
func betaStep(t term.Term) (term.Term, bool) {
	switch n := t.(type) {
	case term.Lambda:
		if newDom, ok := betaStep(n.Dom); ok {
			return term.Lambda{Var: n.Var, Dom: newDom, Body: n.Body}, true
		}
		if newBody, ok := betaStep(n.Body); ok {
			return term.Lambda{Var: n.Var, Dom: n.Dom, Body: newBody}, true
		}
		return t, false
	case term.Product:
		if newDom, ok := betaStep(n.Dom); ok {
			return term.Product{Var: n.Var, Dom: newDom, Body: n.Body}, true
		}
		if newBody, ok := betaStep(n.Body); ok {
			return term.Product{Var: n.Var, Dom: n.Dom, Body: newBody}, true
		}
		return t, false
	case term.App:
		if newFun, ok := betaStep(n.Fun); ok {
			return term.App{Fun: newFun, Arg: n.Arg}, true
		}
		if _, ok := n.Fun.(term.Lambda); ok {
			return Contract(n), true
		}
		if newArg, ok := betaStep(n.Arg); ok {
			return term.App{Fun: n.Fun, Arg: newArg}, true
		}
		return t, false
	case term.Ref:
		for i, a := range n.Args {
			if newArg, ok := betaStep(a); ok {
				args := make([]term.Term, len(n.Args))
				copy(args, n.Args)
				args[i] = newArg
				return term.Ref{Name: n.Name, Args: args}, true
			}
		}
		return t, false
	case term.Variable, term.Sort:
		return t, false
	}
	term.Raise(term.BadTerm, t, "betaStep: unrecognized term shape")
	panic("unreachable")
}

// BetaStep performs one step of beta reduction under betaStep's search
// order, reporting whether it reduced anything.
func BetaStep(t term.Term) (result term.Term, reduced bool, err error) {
	defer recoverFault(&err)
	result, reduced = betaStep(t)
	return
}

// BetaNormalize iterates BetaStep to a fixpoint, unbounded.
func BetaNormalize(t term.Term) (term.Term, error) {
	return BetaNormalizeBudget(t, Unbounded)
}

// BetaNormalizeBudget iterates BetaStep to a fixpoint, raising
// FuelExhausted once more than budget.Max steps have been taken.
func BetaNormalizeBudget(t term.Term, budget Budget) (result term.Term, err error) {
	defer recoverFault(&err)
	result = t
	for steps := 0; ; steps++ {
		budget.checked(steps, result)
		next, reduced := betaStep(result)
		if !reduced {
			return result, nil
		}
		result = next
	}
}
