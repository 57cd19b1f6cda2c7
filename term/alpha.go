package term

import "fmt"

// AlphaEq decides structural equality of t1 and t2 modulo consistent
// renaming of bound variables. This is the canonical equality on terms.
func AlphaEq(t1, t2 Term) bool {
	c := &alphaCtx{ren1: map[string]string{}, ren2: map[string]string{}}
	return c.eq(t1, t2)
}

// alphaCtx carries the two renaming maps (bound name -> shared witness)
// accumulated on the way down into nested binders, plus the counter used
// to mint fresh witnesses. Witnesses are prefixed with a rune that can
// never begin a source identifier, so they can never collide with a real
// free variable threaded in from outside the comparison.
type alphaCtx struct {
	ren1, ren2 map[string]string
	next       int
}

func (c *alphaCtx) witness() string {
	c.next++
	return fmt.Sprintf("#%d", c.next)
}

func (c *alphaCtx) resolve(ren map[string]string, name string) string {
	if w, ok := ren[name]; ok {
		return w
	}
	return name
}

func (c *alphaCtx) eq(t1, t2 Term) bool {
	switch n1 := t1.(type) {
	case Variable:
		n2, ok := t2.(Variable)
		if !ok {
			return false
		}
		return c.resolve(c.ren1, n1.Name) == c.resolve(c.ren2, n2.Name)
	case Sort:
		n2, ok := t2.(Sort)
		return ok && n1.Kind == n2.Kind
	case App:
		n2, ok := t2.(App)
		return ok && c.eq(n1.Fun, n2.Fun) && c.eq(n1.Arg, n2.Arg)
	case Ref:
		n2, ok := t2.(Ref)
		if !ok || n1.Name != n2.Name || len(n1.Args) != len(n2.Args) {
			return false
		}
		for i := range n1.Args {
			if !c.eq(n1.Args[i], n2.Args[i]) {
				return false
			}
		}
		return true
	case Lambda, Product:
		bv1, _ := asBinder(t1)
		bv2, ok := asBinder(t2)
		if !ok || !sameBinderKind(t1, t2) {
			return false
		}
		if !c.eq(bv1.Dom, bv2.Dom) {
			return false
		}
		w := c.witness()
		prev1, had1 := c.ren1[bv1.Var]
		prev2, had2 := c.ren2[bv2.Var]
		c.ren1[bv1.Var] = w
		c.ren2[bv2.Var] = w
		result := c.eq(bv1.Body, bv2.Body)
		if had1 {
			c.ren1[bv1.Var] = prev1
		} else {
			delete(c.ren1, bv1.Var)
		}
		if had2 {
			c.ren2[bv2.Var] = prev2
		} else {
			delete(c.ren2, bv2.Var)
		}
		return result
	}
	panic(&Fault{Code: BadTerm, Term: t1, Msg: "AlphaEq: unrecognized term shape"})
}

func sameBinderKind(t1, t2 Term) bool {
	if IsLambda(t1) {
		return IsLambda(t2)
	}
	return IsProduct(t2)
}
