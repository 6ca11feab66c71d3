package reduction

import "github.com/vic/debruijn/pkg/term"

// ReductionTrace is the ordered sequence of states a reduction passed
// through, from the starting term to either its normal form or the step
// cap. States[0] is always the input term.
type ReductionTrace struct {
	States     []term.Term
	NormalForm bool
}

// Steps returns the number of contractions the trace records.
func (tr *ReductionTrace) Steps() int { return len(tr.States) - 1 }

// Final returns the last recorded state.
func (tr *ReductionTrace) Final() term.Term { return tr.States[len(tr.States)-1] }

// Trace runs the same iteration as Reduce but keeps every intermediate
// term, for step-by-step inspection or printing. maxSteps <= 0 removes the
// cap.
func Trace(t term.Term, maxSteps int) *ReductionTrace {
	tr := &ReductionTrace{States: []term.Term{t}}
	for {
		next, ok := Step(t)
		if !ok {
			tr.NormalForm = true
			return tr
		}
		t = next
		tr.States = append(tr.States, t)
		if maxSteps > 0 && tr.Steps() >= maxSteps {
			tr.NormalForm = term.IsNormalForm(t)
			return tr
		}
	}
}
