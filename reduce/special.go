package reduce

import (
	"github.com/pcc-lang/kernel/decl"
	"github.com/pcc-lang/kernel/env"
	"github.com/pcc-lang/kernel/term"
)

// specialReduce implements special reduction for a single Ref node: a
// Special demands exactly Arity arguments before Fn is invoked. Unlike a
// Definition, a Special is never eta-expanded on under-application.
// InsufficientArgs is fatal rather than triggering a lambda-wrapped
// instantiation.
func specialReduce(lookup decl.Lookup, ctx env.Context, ref term.Ref) (term.Term, bool) {
	d, found := lookup.Fetch(ref.Name)
	if !found {
		return ref, false
	}
	sp, ok := d.(decl.Special)
	if !ok {
		return ref, false
	}
	arity := sp.DeclArity()
	if len(ref.Args) > arity {
		term.Raise(term.TooManyArgs, ref, "special: too many arguments for "+ref.Name)
	}
	if len(ref.Args) < arity {
		term.Raise(term.InsufficientArgs, ref, "special: too few arguments for "+ref.Name)
	}
	if !sp.HasFn() {
		term.Raise(term.CorruptSpecial, ref, "special: no host function registered for "+ref.Name)
	}
	return sp.Fn(lookup, ctx, ref.Args), true
}

// specialStep descends structurally exactly like deltaStep: at a Reference
// it reduces arguments left to right first, and only attempts
// special-reduction at the Reference itself once no argument reduces.
func specialStep(lookup decl.Lookup, ctx env.Context, t term.Term) (term.Term, bool) {
	switch n := t.(type) {
	case term.Lambda:
		if newDom, ok := specialStep(lookup, ctx, n.Dom); ok {
			return term.Lambda{Var: n.Var, Dom: newDom, Body: n.Body}, true
		}
		inner := ctx.Push(n.Var, n.Dom)
		if newBody, ok := specialStep(lookup, inner, n.Body); ok {
			return term.Lambda{Var: n.Var, Dom: n.Dom, Body: newBody}, true
		}
		return t, false
	case term.Product:
		if newDom, ok := specialStep(lookup, ctx, n.Dom); ok {
			return term.Product{Var: n.Var, Dom: newDom, Body: n.Body}, true
		}
		inner := ctx.Push(n.Var, n.Dom)
		if newBody, ok := specialStep(lookup, inner, n.Body); ok {
			return term.Product{Var: n.Var, Dom: n.Dom, Body: newBody}, true
		}
		return t, false
	case term.App:
		if newFun, ok := specialStep(lookup, ctx, n.Fun); ok {
			return term.App{Fun: newFun, Arg: n.Arg}, true
		}
		if newArg, ok := specialStep(lookup, ctx, n.Arg); ok {
			return term.App{Fun: n.Fun, Arg: newArg}, true
		}
		return t, false
	case term.Ref:
		for i, a := range n.Args {
			if newArg, ok := specialStep(lookup, ctx, a); ok {
				args := make([]term.Term, len(n.Args))
				copy(args, n.Args)
				args[i] = newArg
				return term.Ref{Name: n.Name, Args: args}, true
			}
		}
		return specialReduce(lookup, ctx, n)
	case term.Variable, term.Sort:
		return t, false
	}
	term.Raise(term.BadTerm, t, "specialStep: unrecognized term shape")
	panic("unreachable")
}

// SpecialStep performs one step of special reduction against e, with ctx as
// the binding context in scope at t's root (usually env.Context{} for a
// closed term).
func SpecialStep(e decl.Lookup, ctx env.Context, t term.Term) (result term.Term, reduced bool, err error) {
	defer recoverFault(&err)
	result, reduced = specialStep(e, ctx, t)
	return
}

// SpecialNormalize iterates SpecialStep to a fixpoint against e, unbounded.
func SpecialNormalize(e decl.Lookup, ctx env.Context, t term.Term) (term.Term, error) {
	return SpecialNormalizeBudget(e, ctx, t, Unbounded)
}

// SpecialNormalizeBudget is SpecialNormalize with an explicit step Budget.
func SpecialNormalizeBudget(e decl.Lookup, ctx env.Context, t term.Term, budget Budget) (result term.Term, err error) {
	defer recoverFault(&err)
	result = t
	for steps := 0; ; steps++ {
		budget.checked(steps, result)
		next, reduced := specialStep(e, ctx, result)
		if !reduced {
			return result, nil
		}
		result = next
	}
}
