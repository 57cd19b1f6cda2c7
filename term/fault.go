package term

import "fmt"

// ErrCode tags the fatal, structural-bug class of failure: a caller handed
// the kernel a malformed term or a corrupt declaration.
//
//go:generate go run golang.org/x/tools/cmd/stringer -type=ErrCode
type ErrCode int

const (
	// BadTerm: a non-binder was passed to a binder destructor, or a name
	// that is not a well-formed identifier was used to build a term.
	BadTerm ErrCode = iota
	// NotRedex: beta-reduce was asked to contract something that is not
	// an application of a lambda.
	NotRedex
	// NotReference: delta- or special-reduction was asked to act on
	// something that is not a Ref, or delta-reduction reached a Ref whose
	// referent is a Special.
	NotReference
	// TooManyArgs: a Ref carries more arguments than its referent's arity.
	TooManyArgs
	// CorruptDefinition: a Definition declaration has no body.
	CorruptDefinition
	// UnprovenTheorem: a Theorem declaration has no proof.
	UnprovenTheorem
	// CorruptSpecial: a Special declaration has no host function.
	CorruptSpecial
	// InsufficientArgs: a Special was invoked with fewer arguments than
	// its arity; unlike Definitions, Specials are never eta-expanded.
	InsufficientArgs
	// FuelExhausted: a reduction exceeded its configured step Budget.
	FuelExhausted
)

// Fault is the kernel's single exported fatal-error type. It always
// carries the term that triggered the failure (when one is available) so
// that a recovered panic can be reported with full context.
type Fault struct {
	Code ErrCode
	Term Term
	Msg  string
}

func (f *Fault) Error() string {
	if f.Term == nil {
		return fmt.Sprintf("%s: %s", f.Code, f.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", f.Code, f.Msg, Dump(f.Term))
}

// Raise panics a *Fault. Recursive reducer helpers call this instead of
// threading an error return through every structural recursion; the
// exported reducer entry points in package reduce recover exactly one
// *Fault via a deferred recover-and-rewrap (see reduce.recoverFault) and
// return it as an error. This package's constructors and Destruct, and
// reduce.Contract, let the *Fault panic reach their caller.
func Raise(code ErrCode, t Term, msg string) {
	panic(&Fault{Code: code, Term: t, Msg: msg})
}
