package term

import "github.com/sanity-io/litter"

// Dump renders t as a fully expanded, readable tree. Used by Fault.Error()
// and generally useful in test failure output in place of "%#v".
func Dump(t Term) string {
	return litter.Sdump(t)
}
