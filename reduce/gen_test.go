package reduce

import (
	"math/rand"

	"github.com/pcc-lang/kernel/term"
)

// genScope tracks the names currently bound by an enclosing binder, so
// genTerm only ever emits variables that are actually in scope. See
// term/gen_test.go for the sibling generator used by that package's own
// property tests; this copy exists because reduce's white-box tests
// cannot reach into term's test-only helpers across a package boundary.
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

// genTerm builds a random well-scoped term to the given depth, biased
// toward producing a few beta-redexes (a Lambda directly applied) so the
// reducer laws below are exercised on more than trivial input.
func genTerm(r *rand.Rand, depth int, scope genScope) term.Term {
	if depth <= 0 {
		return genLeaf(r, scope)
	}
	switch r.Intn(4) {
	case 0:
		name := scope.fresh(r)
		dom := genSort(r)
		body := genTerm(r, depth-1, append(scope, name))
		return term.NewLambda(name, dom, body)
	case 1:
		name := scope.fresh(r)
		dom := genSort(r)
		body := genTerm(r, depth-1, append(scope, name))
		lam := term.NewLambda(name, dom, body)
		arg := genTerm(r, depth-1, scope)
		return term.NewApp(lam, arg)
	default:
		fun := genTerm(r, depth-1, scope)
		arg := genTerm(r, depth-1, scope)
		return term.NewApp(fun, arg)
	}
}

func genLeaf(r *rand.Rand, scope genScope) term.Term {
	if len(scope) > 0 && r.Intn(2) == 0 {
		return term.NewVariable(scope[r.Intn(len(scope))])
	}
	return genSort(r)
}

func genSort(r *rand.Rand) term.Term {
	if r.Intn(2) == 0 {
		return term.NewSort(term.TypeSort)
	}
	return term.NewSort(term.KindSort)
}

func genTrials(depth int, fn func(t term.Term)) {
	for _, seed := range []int64{1, 2, 3, 5, 8, 13, 21, 34} {
		r := rand.New(rand.NewSource(seed))
		fn(genTerm(r, depth, nil))
	}
}

// countRedexes counts beta-redexes (an App whose Fun is a Lambda)
// anywhere in t, for the subject-reduction-on-shape property below.
func countRedexes(t term.Term) int {
	switch n := t.(type) {
	case term.Variable, term.Sort:
		return 0
	case term.Lambda:
		return countRedexes(n.Dom) + countRedexes(n.Body)
	case term.Product:
		return countRedexes(n.Dom) + countRedexes(n.Body)
	case term.App:
		count := countRedexes(n.Fun) + countRedexes(n.Arg)
		if term.IsLambda(n.Fun) {
			count++
		}
		return count
	case term.Ref:
		count := 0
		for _, a := range n.Args {
			count += countRedexes(a)
		}
		return count
	}
	return 0
}
