package env

import (
	"github.com/pcc-lang/kernel/decl"
	"github.com/pcc-lang/kernel/term"
)

// Context is the ordered sequence of (name, type) bindings in scope,
// needed only by Special host functions, which may compute differently
// depending on what is in scope at the point of reduction.
type Context []decl.Param

// Push returns a new Context with (name, typ) appended, leaving c
// untouched. Contexts, like Terms, are treated as immutable values.
func (c Context) Push(name string, typ term.Term) Context {
	extended := make(Context, len(c), len(c)+1)
	copy(extended, c)
	return append(extended, decl.Param{Name: name, Type: typ})
}

// Names returns the bound names of c, in scope order.
func (c Context) Names() []string {
	names := make([]string, len(c))
	for i, p := range c {
		names[i] = p.Name
	}
	return names
}
