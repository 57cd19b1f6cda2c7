package decl_test

import (
	"testing"

	"github.com/pcc-lang/kernel/decl"
	"github.com/pcc-lang/kernel/term"
)

func TestArityMatchesParams(t *testing.T) {
	params := []decl.Param{
		{Name: "x", Type: term.NewSort(term.TypeSort)},
		{Name: "y", Type: term.NewSort(term.KindSort)},
	}
	d := decl.Definition{Name: "f", Params: params, Body: term.NewVariable("x")}
	if d.DeclArity() != 2 {
		t.Fatalf("expected arity 2, got %d", d.DeclArity())
	}
}

func TestHasBodyHasProofHasFn(t *testing.T) {
	if (decl.Definition{}).HasBody() {
		t.Error("a Definition with a nil Body should report HasBody() == false")
	}
	if (decl.Theorem{}).HasProof() {
		t.Error("a Theorem with a nil Proof should report HasProof() == false")
	}
	if (decl.Special{}).HasFn() {
		t.Error("a Special with a nil Fn should report HasFn() == false")
	}

	withBody := decl.Definition{Body: term.NewSort(term.TypeSort)}
	if !withBody.HasBody() {
		t.Error("expected HasBody() == true")
	}
}
