package reduce

import (
	"github.com/samber/lo"

	"github.com/pcc-lang/kernel/decl"
	"github.com/pcc-lang/kernel/env"
	"github.com/pcc-lang/kernel/term"
)

// instantiate pairs the first len(args) params with args into a parallel
// substitution, wraps any leftover params (in original order, using their
// declared types) as fresh lambdas around body, and only then applies the
// substitution to the whole thing. A leftover parameter name that collides
// with a free variable of an actual argument gets renamed by term.Subst's
// own capture-avoidance, so this function needs no renaming logic of its
// own.
func instantiate(params []decl.Param, body term.Term, args []term.Term) term.Term {
	if len(args) > len(params) {
		term.Raise(term.TooManyArgs, body, "delta: too many arguments")
	}
	pairs := lo.Zip2(params[:len(args)], args)
	sigma := lo.SliceToMap(pairs, func(p lo.Tuple2[decl.Param, term.Term]) (string, term.Term) {
		return p.A.Name, p.B
	})

	wrapped := body
	leftover := params[len(args):]
	for i := len(leftover) - 1; i >= 0; i-- {
		p := leftover[i]
		wrapped = term.NewLambda(p.Name, p.Type, wrapped)
	}
	return term.SubstAll(wrapped, sigma)
}

// deltaReduce implements the per-tag delta-reduction policy for a single
// Ref node. It never inspects anything but ref's own args; the structural
// search that decides *which* Ref to attempt this on lives in deltaStep.
func deltaReduce(lookup decl.Lookup, ref term.Ref) (term.Term, bool) {
	d, found := lookup.Fetch(ref.Name)
	if !found {
		return ref, false
	}
	if len(ref.Args) > d.DeclArity() {
		term.Raise(term.TooManyArgs, ref, "delta: too many arguments for "+ref.Name)
	}
	switch dd := d.(type) {
	case decl.Definition:
		if !dd.HasBody() {
			term.Raise(term.CorruptDefinition, ref, "delta: definition has no body: "+ref.Name)
		}
		return instantiate(dd.Params, dd.Body, ref.Args), true
	case decl.Theorem:
		if !dd.HasProof() {
			term.Raise(term.UnprovenTheorem, ref, "delta: theorem has no proof: "+ref.Name)
		}
		return ref, false
	case decl.Axiom:
		return ref, false
	case decl.Special:
		term.Raise(term.NotReference, ref, "delta: a Special must be reduced by the special reducer, not delta: "+ref.Name)
	}
	term.Raise(term.BadTerm, ref, "deltaReduce: unrecognized declaration tag")
	panic("unreachable")
}

// deltaStep descends structurally exactly like betaStep, except that at a
// Reference it first reduces arguments left to right; only once no
// argument reduces does it attempt delta-reduction at the Reference
// itself.
func deltaStep(lookup decl.Lookup, t term.Term) (term.Term, bool) {
	switch n := t.(type) {
	case term.Lambda:
		if newDom, ok := deltaStep(lookup, n.Dom); ok {
			return term.Lambda{Var: n.Var, Dom: newDom, Body: n.Body}, true
		}
		if newBody, ok := deltaStep(lookup, n.Body); ok {
			return term.Lambda{Var: n.Var, Dom: n.Dom, Body: newBody}, true
		}
		return t, false
	case term.Product:
		if newDom, ok := deltaStep(lookup, n.Dom); ok {
			return term.Product{Var: n.Var, Dom: newDom, Body: n.Body}, true
		}
		if newBody, ok := deltaStep(lookup, n.Body); ok {
			return term.Product{Var: n.Var, Dom: n.Dom, Body: newBody}, true
		}
		return t, false
	case term.App:
		if newFun, ok := deltaStep(lookup, n.Fun); ok {
			return term.App{Fun: newFun, Arg: n.Arg}, true
		}
		if newArg, ok := deltaStep(lookup, n.Arg); ok {
			return term.App{Fun: n.Fun, Arg: newArg}, true
		}
		return t, false
	case term.Ref:
		for i, a := range n.Args {
			if newArg, ok := deltaStep(lookup, a); ok {
				args := make([]term.Term, len(n.Args))
				copy(args, n.Args)
				args[i] = newArg
				return term.Ref{Name: n.Name, Args: args}, true
			}
		}
		return deltaReduce(lookup, n)
	case term.Variable, term.Sort:
		return t, false
	}
	term.Raise(term.BadTerm, t, "deltaStep: unrecognized term shape")
	panic("unreachable")
}

// DeltaStep performs one step of delta reduction against the layered
// environment e.
func DeltaStep(e decl.Lookup, t term.Term) (result term.Term, reduced bool, err error) {
	defer recoverFault(&err)
	result, reduced = deltaStep(e, t)
	return
}

// DeltaNormalize iterates DeltaStep to a fixpoint against e, unbounded.
func DeltaNormalize(e decl.Lookup, t term.Term) (term.Term, error) {
	return deltaNormalizeBudget(e, t, Unbounded)
}

// DeltaNormalizeBudget is DeltaNormalize with an explicit step Budget.
func DeltaNormalizeBudget(e decl.Lookup, t term.Term, budget Budget) (term.Term, error) {
	return deltaNormalizeBudget(e, t, budget)
}

// DeltaStepLocal is DeltaStep against a map-only, non-layered environment.
// Parse-time resolution against a scratch table reuses exactly this
// machinery.
func DeltaStepLocal(l env.Local, t term.Term) (term.Term, bool, error) {
	return DeltaStep(l, t)
}

// DeltaNormalizeLocal is DeltaNormalize against a local, map-only
// environment.
func DeltaNormalizeLocal(l env.Local, t term.Term) (term.Term, error) {
	return DeltaNormalize(l, t)
}

func deltaNormalizeBudget(lookup decl.Lookup, t term.Term, budget Budget) (result term.Term, err error) {
	defer recoverFault(&err)
	result = t
	for steps := 0; ; steps++ {
		budget.checked(steps, result)
		next, reduced := deltaStep(lookup, result)
		if !reduced {
			return result, nil
		}
		result = next
	}
}
