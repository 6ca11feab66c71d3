package term

// Shift returns t with amount added to every variable index at or above
// cutoff. Indices below cutoff reference binders inside t and stay
// untouched. The cutoff grows by one per abstraction entered, so a cutoff
// of 1 adjusts exactly the free variables of t; a negative amount moves a
// term out from under a binder.
func Shift(t Term, amount, cutoff int) Term {
	switch v := t.(type) {
	case Var:
		if v.Index >= cutoff {
			return Var{Index: v.Index + amount}
		}
		return v
	case Abs:
		return Abs{Body: Shift(v.Body, amount, cutoff+1)}
	case App:
		return App{
			Fun: Shift(v.Fun, amount, cutoff),
			Arg: Shift(v.Arg, amount, cutoff),
		}
	}
	return t
}

// Substitute replaces every free occurrence of index in t with replacement.
// Each abstraction crossed on the way down bumps the index being looked for
// and shifts replacement's free variables up by one, keeping them pointing
// at the same binders they pointed at in the caller's scope. Occurrences of
// other indices are left alone; closing the binder vacated by a contraction
// is the caller's shift, not this routine's.
func Substitute(t Term, index int, replacement Term) Term {
	switch v := t.(type) {
	case Var:
		if v.Index == index {
			return replacement
		}
		return v
	case Abs:
		return Abs{Body: Substitute(v.Body, index+1, Shift(replacement, 1, 1))}
	case App:
		return App{
			Fun: Substitute(v.Fun, index, replacement),
			Arg: Substitute(v.Arg, index, replacement),
		}
	}
	return t
}

// IsNormalForm reports whether t contains no redex, i.e. no subterm of the
// shape App{Abs{...}, ...}.
func IsNormalForm(t Term) bool {
	switch v := t.(type) {
	case Var:
		return true
	case Abs:
		return IsNormalForm(v.Body)
	case App:
		if _, ok := v.Fun.(Abs); ok {
			return false
		}
		return IsNormalForm(v.Fun) && IsNormalForm(v.Arg)
	}
	return true
}

// MaxFreeIndex returns the largest free variable index of t, counted from
// t's own top level, or 0 when t is closed.
func MaxFreeIndex(t Term) int {
	return maxFree(t, 0)
}

func maxFree(t Term, depth int) int {
	switch v := t.(type) {
	case Var:
		if v.Index > depth {
			return v.Index - depth
		}
		return 0
	case Abs:
		return maxFree(v.Body, depth+1)
	case App:
		f := maxFree(v.Fun, depth)
		if a := maxFree(v.Arg, depth); a > f {
			return a
		}
		return f
	}
	return 0
}
