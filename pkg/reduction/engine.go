// Package reduction implements the normal-order beta-reduction engine for
// nameless lambda terms: single contraction steps, iteration to normal form
// under a caller-controlled step budget, and step-by-step traces.
//
// Reduction is a pure function from term to term. Input terms are never
// mutated; every step builds a new term and leaves the argument valid for
// any other holder. Divergent terms are an expected input, not a fault: the
// step budget is the sole cancellation mechanism, and running out of it is
// reported as a flag, never as an error.
package reduction

import "github.com/vic/debruijn/pkg/term"

// Step performs exactly one normal-order contraction and reports whether a
// redex existed. Redex selection is leftmost-outermost: the term is scanned
// depth-first, a redex in head position is contracted before its arguments
// are even looked at, arguments are only reduced once the function position
// offers no redex, and abstraction bodies are only entered when no outer
// redex remains. This strategy reaches a normal form whenever one exists.
func Step(t term.Term) (term.Term, bool) {
	switch v := t.(type) {
	case term.Var:
		return t, false
	case term.Abs:
		if body, ok := Step(v.Body); ok {
			return term.Abs{Body: body}, true
		}
		return t, false
	case term.App:
		if abs, ok := v.Fun.(term.Abs); ok {
			return contract(abs.Body, v.Arg), true
		}
		if fun, ok := Step(v.Fun); ok {
			return term.App{Fun: fun, Arg: v.Arg}, true
		}
		if arg, ok := Step(v.Arg); ok {
			return term.App{Fun: v.Fun, Arg: arg}, true
		}
		return t, false
	}
	return t, false
}

// contract performs one beta contraction of App{Abs{body}, arg}: the
// argument is shifted under the binder it is about to enter, substituted for
// index 1, and the vacated binder is closed by shifting the remaining free
// indices back down.
func contract(body, arg term.Term) term.Term {
	return term.Shift(term.Substitute(body, 1, term.Shift(arg, 1, 1)), -1, 1)
}

// Result is the outcome of a bounded full reduction.
type Result struct {
	// Term is the final state: the normal form when NormalForm is true,
	// otherwise a valid intermediate state at the step cap.
	Term term.Term
	// Steps is the number of contractions performed.
	Steps int
	// NormalForm reports whether Term contains no redex. False means the
	// step budget ran out first; the input may simply have no normal
	// form, which is a meaningful outcome rather than a failure.
	NormalForm bool
}

// Reduce applies Step until no redex remains or maxSteps contractions have
// been performed. maxSteps <= 0 removes the cap, at the caller's own risk
// on divergent terms. A term already in normal form comes back unchanged
// with zero steps taken.
func Reduce(t term.Term, maxSteps int) Result {
	steps := 0
	for {
		next, ok := Step(t)
		if !ok {
			return Result{Term: t, Steps: steps, NormalForm: true}
		}
		t = next
		steps++
		if maxSteps > 0 && steps >= maxSteps {
			return Result{Term: t, Steps: steps, NormalForm: term.IsNormalForm(t)}
		}
	}
}
