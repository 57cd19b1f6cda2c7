package term_test

import (
	"math/rand"

	. "github.com/pcc-lang/kernel/term"
)

// genScope is the generator's notion of "what's well-formed here": the
// names currently bound by an enclosing binder. It is consulted before
// emitting a Variable or a fresh binder name, so every term genTerm
// produces is well-scoped by construction (no accidentally-free
// variables to confuse a property test that assumes closed input).
type genScope []string

func (s genScope) fresh(r *rand.Rand) string {
	letters := [...]string{"a", "b", "c", "d", "e", "f"}
	for {
		candidate := letters[r.Intn(len(letters))]
		if !s.has(candidate) {
			return candidate
		}
		candidate += "'"
		if !s.has(candidate) {
			return candidate
		}
	}
}

func (s genScope) has(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}

// genTerm builds a random well-scoped term to the given depth. At depth 0
// it bottoms out at a Sort or, when a name is in scope, possibly a bound
// Variable. Binder domains are always Sorts. This generator does not
// attempt to produce well-typed terms, only well-scoped ones, which is
// enough to exercise the algebraic laws below without every trial
// diverging on an ill-typed redex.
func genTerm(r *rand.Rand, depth int, scope genScope) Term {
	if depth <= 0 {
		return genLeaf(r, scope)
	}
	switch r.Intn(3) {
	case 0:
		name := scope.fresh(r)
		dom := genSort(r)
		body := genTerm(r, depth-1, append(scope, name))
		return NewLambda(name, dom, body)
	case 1:
		name := scope.fresh(r)
		dom := genSort(r)
		body := genTerm(r, depth-1, append(scope, name))
		return NewProduct(name, dom, body)
	default:
		fun := genTerm(r, depth-1, scope)
		arg := genTerm(r, depth-1, scope)
		return NewApp(fun, arg)
	}
}

func genLeaf(r *rand.Rand, scope genScope) Term {
	if len(scope) > 0 && r.Intn(2) == 0 {
		return NewVariable(scope[r.Intn(len(scope))])
	}
	return genSort(r)
}

func genSort(r *rand.Rand) Term {
	if r.Intn(2) == 0 {
		return NewSort(TypeSort)
	}
	return NewSort(KindSort)
}

// genTrials runs fn over a fixed, reproducible spread of generated terms.
// A fixed seed list rather than a single seed keeps a failing trial
// reproducible on every run without needing -run/-seed flags.
func genTrials(depth int, fn func(t Term)) {
	for _, seed := range []int64{1, 2, 3, 5, 8, 13, 21, 34} {
		r := rand.New(rand.NewSource(seed))
		fn(genTerm(r, depth, nil))
	}
}
