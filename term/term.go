// Package term implements the term algebra of a Pure Type System in the
// Calculus of Constructions family: variables, the two sorts, dependent
// lambdas and products, binary application, and applied references to
// named declarations. It also owns the two operations whose correctness
// the rest of the kernel leans on hardest: capture-avoiding substitution
// and alpha-equivalence.
package term

import (
	"strings"

	"github.com/smasher164/xid"
)

// Term is the sealed union of every term shape. The only implementations
// are the types defined in this file; isTerm is unexported so no other
// package can add a variant.
type Term interface {
	isTerm()
}

var (
	_ Term = Variable{}
	_ Term = Sort{}
	_ Term = Lambda{}
	_ Term = Product{}
	_ Term = App{}
	_ Term = Ref{}
)

// Variable is a free or bound occurrence of a name.
type Variable struct {
	Name string
}

func (Variable) isTerm() {}

// NewVariable builds a Variable, panicking a *Fault(BadTerm) if name is not
// a well-formed identifier.
func NewVariable(name string) Variable {
	requireIdent(name)
	return Variable{Name: name}
}

// SortKind distinguishes the two universes of the calculus.
type SortKind int

const (
	// TypeSort is "*", the sort of types.
	TypeSort SortKind = iota
	// KindSort is "□", the sort of *.
	KindSort
)

// Sort is a universe term, either TypeSort or KindSort.
type Sort struct {
	Kind SortKind
}

func (Sort) isTerm() {}

// NewSort builds a Sort term.
func NewSort(k SortKind) Sort { return Sort{Kind: k} }

// Lambda is a term abstraction "λ(x:Dom).Body".
type Lambda struct {
	Var  string
	Dom  Term
	Body Term
}

func (Lambda) isTerm() {}

// NewLambda builds a Lambda, panicking a *Fault(BadTerm) if Var is not a
// well-formed identifier.
func NewLambda(v string, dom, body Term) Lambda {
	requireIdent(v)
	return Lambda{Var: v, Dom: dom, Body: body}
}

// Product is a dependent function type "Π(x:Dom).Body".
type Product struct {
	Var  string
	Dom  Term
	Body Term
}

func (Product) isTerm() {}

// NewProduct builds a Product, panicking a *Fault(BadTerm) if Var is not a
// well-formed identifier.
func NewProduct(v string, dom, body Term) Product {
	requireIdent(v)
	return Product{Var: v, Dom: dom, Body: body}
}

// App is binary application "(Fun Arg)". Multi-argument application is
// represented as nested, left-associative App nodes.
type App struct {
	Fun Term
	Arg Term
}

func (App) isTerm() {}

// NewApp builds an App.
func NewApp(fun, arg Term) App { return App{Fun: fun, Arg: arg} }

// Apply folds NewApp over args, left-associatively: Apply(f, a, b, c) is
// ((f a) b) c.
func Apply(fun Term, args ...Term) Term {
	result := fun
	for _, a := range args {
		result = App{Fun: result, Arg: a}
	}
	return result
}

// Ref is an applied occurrence of a named declaration: the name refers
// into an Environment, never into the local binder scope, so it is never
// touched by substitution.
type Ref struct {
	Name string
	Args []Term
}

func (Ref) isTerm() {}

// NewRef builds a Ref.
func NewRef(name string, args ...Term) Ref {
	requireIdent(name)
	return Ref{Name: name, Args: args}
}

// Predicates over term shapes.

func IsVariable(t Term) bool { _, ok := t.(Variable); return ok }
func IsSort(t Term) bool     { _, ok := t.(Sort); return ok }
func IsLambda(t Term) bool   { _, ok := t.(Lambda); return ok }
func IsProduct(t Term) bool  { _, ok := t.(Product); return ok }
func IsBinder(t Term) bool   { return IsLambda(t) || IsProduct(t) }
func IsApp(t Term) bool      { _, ok := t.(App); return ok }
func IsRef(t Term) bool      { _, ok := t.(Ref); return ok }

// binderView is a uniform view over Lambda and Product, letting subst.go
// and alpha.go share one recursion instead of duplicating it per shape.
type binderView struct {
	Var     string
	Dom     Term
	Body    Term
	rebuild func(v string, dom, body Term) Term
}

func asBinder(t Term) (binderView, bool) {
	switch b := t.(type) {
	case Lambda:
		return binderView{
			Var: b.Var, Dom: b.Dom, Body: b.Body,
			rebuild: func(v string, dom, body Term) Term { return Lambda{Var: v, Dom: dom, Body: body} },
		}, true
	case Product:
		return binderView{
			Var: b.Var, Dom: b.Dom, Body: b.Body,
			rebuild: func(v string, dom, body Term) Term { return Product{Var: v, Dom: dom, Body: body} },
		}, true
	}
	return binderView{}, false
}

// Destruct exposes a binder's (name, domain, body) triple. It panics a
// *Fault(BadTerm) if t is not a Lambda or Product.
func Destruct(t Term) (v string, dom, body Term) {
	bv, ok := asBinder(t)
	if !ok {
		panic(&Fault{Code: BadTerm, Term: t, Msg: "Destruct called on a non-binder"})
	}
	return bv.Var, bv.Dom, bv.Body
}

func requireIdent(name string) {
	if !validIdent(name) {
		panic(&Fault{Code: BadTerm, Msg: "not a well-formed identifier: " + name})
	}
}

// validIdent reports whether name is an identifier: a Unicode identifier
// start rune (or underscore) followed by identifier continuation runes (or
// underscore), optionally followed by one or more trailing apostrophes,
// the mark this package's own freshening (see fresh.go) appends to avoid
// capture.
func validIdent(name string) bool {
	base := strings.TrimRight(name, "'")
	if base == "" {
		return false
	}
	for i, r := range base {
		if i == 0 {
			if r != '_' && !xid.Start(r) {
				return false
			}
		} else if r != '_' && !xid.Continue(r) {
			return false
		}
	}
	return true
}
