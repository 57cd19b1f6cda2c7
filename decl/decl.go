// Package decl defines the declaration records an Environment (package
// env) stores by name: definitions, theorems, axioms, and host-callable
// specials.
package decl

import "github.com/pcc-lang/kernel/term"

// Param is one formal parameter of a declaration: a name paired with its
// declared type.
type Param struct {
	Name string
	Type term.Term
}

// Decl is the sealed union of declaration tags. Every variant carries
// Name and Params; Arity is not stored, DeclArity returns len(Params), so
// call sites that check arity on every reduction step need not recompute
// it themselves.
type Decl interface {
	isDecl()
	DeclName() string
	DeclArity() int
	DeclParams() []Param
}

var (
	_ Decl = Definition{}
	_ Decl = Theorem{}
	_ Decl = Axiom{}
	_ Decl = Special{}
)

// Definition unfolds, at delta-reduction time, to its Body instantiated
// with the actual arguments.
type Definition struct {
	Name   string
	Params []Param
	// Body is nil for a declared-but-not-yet-defined Definition; delta
	// reduction on such a Definition is a fatal CorruptDefinition.
	Body term.Term
}

func (Definition) isDecl()                {}
func (d Definition) DeclName() string     { return d.Name }
func (d Definition) DeclArity() int       { return len(d.Params) }
func (d Definition) DeclParams() []Param  { return d.Params }
func (d Definition) HasBody() bool        { return d.Body != nil }

// Theorem is opaque once proved: delta-reduction never unfolds it, the
// same as an Axiom, but a Theorem with no Proof is a programming error
// (a statement without a certificate should never reach the kernel).
type Theorem struct {
	Name   string
	Params []Param
	Proof  term.Term
}

func (Theorem) isDecl()               {}
func (t Theorem) DeclName() string    { return t.Name }
func (t Theorem) DeclArity() int      { return len(t.Params) }
func (t Theorem) DeclParams() []Param { return t.Params }
func (t Theorem) HasProof() bool      { return t.Proof != nil }

// Axiom is always opaque: delta-reduction never unfolds it and there is no
// notion of a "corrupt" Axiom.
type Axiom struct {
	Name   string
	Params []Param
}

func (Axiom) isDecl()               {}
func (a Axiom) DeclName() string    { return a.Name }
func (a Axiom) DeclArity() int      { return len(a.Params) }
func (a Axiom) DeclParams() []Param { return a.Params }

// HostFunc is the host-side computation a Special invokes once it has
// received exactly Arity arguments. ctx is the in-scope binding context at
// the point of reduction (needed by Specials that compute based on what is
// in scope); args is always exactly len(Params) long.
type HostFunc func(env Lookup, ctx []Param, args []term.Term) term.Term

// Lookup is the minimal capability a HostFunc needs back from an
// Environment: looking up another declaration by name. It is an interface
// here, rather than env.Env directly, so that package env can depend on
// package decl without decl depending back on env.
type Lookup interface {
	Fetch(name string) (Decl, bool)
}

// Special reduces by invoking Fn rather than by substitution. Specials are
// never eta-expanded: special-reduction demands all Arity arguments before
// it will invoke Fn.
type Special struct {
	Name   string
	Params []Param
	Fn     HostFunc
}

func (Special) isDecl()               {}
func (s Special) DeclName() string    { return s.Name }
func (s Special) DeclArity() int      { return len(s.Params) }
func (s Special) DeclParams() []Param { return s.Params }
func (s Special) HasFn() bool         { return s.Fn != nil }
