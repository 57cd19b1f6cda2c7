package reduce

import (
	"github.com/pcc-lang/kernel/decl"
	"github.com/pcc-lang/kernel/env"
	"github.com/pcc-lang/kernel/term"
)

// normalizeStep tries special reduction first, then delta, then beta. The
// loop in Normalize only re-starts this priority order from special once a
// lower-priority reducer has fired, rather than interleaving arbitrarily,
// so a term that keeps unfolding new Specials never gets stuck behind an
// unrelated beta-redex.
func normalizeStep(lookup decl.Lookup, ctx env.Context, t term.Term) (term.Term, bool) {
	if next, ok := specialStep(lookup, ctx, t); ok {
		return next, true
	}
	if next, ok := deltaStep(lookup, t); ok {
		return next, true
	}
	if next, ok := betaStep(t); ok {
		return next, true
	}
	return t, false
}

// Normalize iterates normalizeStep to a fixpoint against e and ctx,
// unbounded.
func Normalize(e decl.Lookup, ctx env.Context, t term.Term) (term.Term, error) {
	return NormalizeBudget(e, ctx, t, Unbounded)
}

// NormalizeBudget is Normalize with an explicit step Budget.
func NormalizeBudget(e decl.Lookup, ctx env.Context, t term.Term, budget Budget) (result term.Term, err error) {
	defer recoverFault(&err)
	result = t
	for steps := 0; ; steps++ {
		budget.checked(steps, result)
		next, reduced := normalizeStep(e, ctx, result)
		if !reduced {
			return result, nil
		}
		result = next
	}
}

// NormalizeEnv is Normalize against e with an empty context, for a closed
// term that still needs e to resolve its References.
func NormalizeEnv(e decl.Lookup, t term.Term) (term.Term, error) {
	return Normalize(e, env.Context{}, t)
}

// NormalizeEnvBudget is NormalizeEnv with an explicit step Budget.
func NormalizeEnvBudget(e decl.Lookup, t term.Term, budget Budget) (term.Term, error) {
	return NormalizeBudget(e, env.Context{}, t, budget)
}

// NormalizeClosed is Normalize against an empty environment and an empty
// context, the common case of normalizing a self-contained term that
// carries no References and no free variables needing a type.
func NormalizeClosed(t term.Term) (term.Term, error) {
	return Normalize(env.New(), env.Context{}, t)
}

// BetaEq is the conversion check: normalize both terms with e and ctx,
// then test the results for alpha-equivalence. A *term.Fault from either
// normalization step propagates as err; BetaEq never itself returns an
// error for a mismatch. A false result is a normal outcome, not a fault.
func BetaEq(e decl.Lookup, ctx env.Context, t1, t2 term.Term) (bool, error) {
	return BetaEqBudget(e, ctx, t1, t2, Unbounded)
}

// BetaEqBudget is BetaEq with an explicit step Budget, applied to each of
// the two normalizations separately.
func BetaEqBudget(e decl.Lookup, ctx env.Context, t1, t2 term.Term, budget Budget) (bool, error) {
	n1, err := NormalizeBudget(e, ctx, t1, budget)
	if err != nil {
		return false, err
	}
	n2, err := NormalizeBudget(e, ctx, t2, budget)
	if err != nil {
		return false, err
	}
	return term.AlphaEq(n1, n2), nil
}

// BetaEqClosed is BetaEq against an empty environment and context, for
// comparing two closed terms with no declarations in play.
func BetaEqClosed(t1, t2 term.Term) (bool, error) {
	return BetaEq(env.New(), env.Context{}, t1, t2)
}
