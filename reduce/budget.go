package reduce

import "github.com/pcc-lang/kernel/term"

// Budget is an opt-in step-count cap for callers who cannot guarantee the
// term they are normalizing terminates. The zero value is unbounded: every
// *Normalize entry point that does not take a Budget explicitly behaves as
// if called with Budget{}, so existing callers see no behavior change from
// its existence.
type Budget struct {
	// Max is the maximum number of single-reduction-steps a *-normalize
	// loop will take before raising FuelExhausted. Zero means unbounded.
	Max int
}

// Unbounded is the zero-value Budget, spelled out for readability at call
// sites that want to be explicit about not capping steps.
var Unbounded = Budget{}

func (b Budget) exceeded(steps int) bool {
	return b.Max > 0 && steps > b.Max
}

func (b Budget) checked(steps int, t term.Term) {
	if b.exceeded(steps) {
		term.Raise(term.FuelExhausted, t, "reduction exceeded its step budget")
	}
}
