package term_test

import (
	"testing"

	. "github.com/pcc-lang/kernel/term"
)

func TestAlphaEqReflexive(t *testing.T) {
	terms := []Term{
		NewVariable("x"),
		NewSort(TypeSort),
		NewSort(KindSort),
		NewLambda("x", NewSort(TypeSort), NewVariable("x")),
		NewProduct("x", NewSort(TypeSort), NewVariable("x")),
		NewApp(NewVariable("f"), NewVariable("a")),
		NewRef("g", NewVariable("a"), NewVariable("b")),
	}
	for _, term := range terms {
		if !AlphaEq(term, term) {
			t.Errorf("AlphaEq should be reflexive on %s", Dump(term))
		}
	}
}

func TestAlphaEqUnderRenaming(t *testing.T) {
	// alpha-eq((\x:tau.x), (\y:tau.y)) should hold.
	tau := NewSort(TypeSort)
	lhs := NewLambda("x", tau, NewVariable("x"))
	rhs := NewLambda("y", tau, NewVariable("y"))
	if !AlphaEq(lhs, rhs) {
		t.Fatalf("%s and %s should be alpha-equivalent", Dump(lhs), Dump(rhs))
	}
}

func TestAlphaEqDistinguishesLambdaFromProduct(t *testing.T) {
	tau := NewSort(TypeSort)
	lam := NewLambda("x", tau, NewVariable("x"))
	prod := NewProduct("x", tau, NewVariable("x"))
	if AlphaEq(lam, prod) {
		t.Fatal("a Lambda must never be alpha-equal to a Product")
	}
}

func TestAlphaEqRespectsShadowing(t *testing.T) {
	// \x. \x. x  vs  \x. \y. y  -- both bind an unused outer name and an
	// inner name that is then returned; these ARE alpha-equivalent.
	a := NewLambda("x", NewSort(TypeSort), NewLambda("x", NewSort(TypeSort), NewVariable("x")))
	b := NewLambda("x", NewSort(TypeSort), NewLambda("y", NewSort(TypeSort), NewVariable("y")))
	if !AlphaEq(a, b) {
		t.Fatalf("%s and %s should be alpha-equivalent", Dump(a), Dump(b))
	}

	// \x. \x. x  vs  \x. \y. x -- not alpha-equivalent: the first returns
	// the inner binding, the second the outer.
	c := NewLambda("x", NewSort(TypeSort), NewLambda("y", NewSort(TypeSort), NewVariable("x")))
	if AlphaEq(a, c) {
		t.Fatalf("%s and %s must not be alpha-equivalent", Dump(a), Dump(c))
	}
}

func TestAlphaEqFreeVariableMismatch(t *testing.T) {
	if AlphaEq(NewVariable("x"), NewVariable("y")) {
		t.Fatal("distinct free variables are never alpha-equivalent")
	}
}

func TestAlphaEqRefNameAndArity(t *testing.T) {
	a := NewRef("f", NewVariable("x"))
	b := NewRef("g", NewVariable("x"))
	if AlphaEq(a, b) {
		t.Fatal("References with different names must not be alpha-equal")
	}
	c := NewRef("f", NewVariable("x"), NewVariable("y"))
	if AlphaEq(a, c) {
		t.Fatal("References with different arities must not be alpha-equal")
	}
}
