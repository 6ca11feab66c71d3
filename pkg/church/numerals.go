package church

import "github.com/vic/debruijn/pkg/term"

// Zero - the Church numeral 0.
//
// ZERO := λfx.x = λ λ 1
func Zero() term.Term { return absN(2, vr(1)) }

// One - the Church numeral 1, structurally identical to the eta-expanded
// identity.
//
// ONE := λfx.f x = λ λ 2 1
func One() term.Term { return absN(2, app(vr(2), vr(1))) }

// Succ - the successor function on Church numerals.
//
// SUCC := λnfx.f (n f x) = λ λ λ 2 (3 2 1)
func Succ() term.Term {
	return absN(3, app(vr(2), app(vr(3), vr(2), vr(1))))
}

// Plus - addition of Church numerals.
//
// PLUS := λmnfx.m f (n f x) = λ λ λ λ 4 2 (3 2 1)
func Plus() term.Term {
	return absN(4, app(vr(4), vr(2), app(vr(3), vr(2), vr(1))))
}

// Mult - multiplication of Church numerals.
//
// MULT := λmnf.m (n f) = λ λ λ 3 (2 1)
func Mult() term.Term {
	return absN(3, app(vr(3), app(vr(2), vr(1))))
}

// Pow - exponentiation of Church numerals.
//
// POW := λmn.n m = λ λ 1 2
func Pow() term.Term { return absN(2, app(vr(1), vr(2))) }

// IsZero tests a Church numeral for zero, producing a Church boolean.
//
// IS_ZERO := λn.n (λx.FALSE) TRUE = λ 1 (λ FALSE) TRUE
func IsZero() term.Term {
	return abs(app(vr(1), abs(False()), True()))
}

// ToChurch encodes a non-negative Go integer as a Church numeral: n
// applications of the first binder to the second.
func ToChurch(n int) term.Term {
	body := vr(1)
	for i := 0; i < n; i++ {
		body = app(vr(2), body)
	}
	return absN(2, body)
}

// FromChurch decodes a Church numeral in normal form back to a Go integer.
// The second result is false when the term is not a Church numeral.
func FromChurch(t term.Term) (int, bool) {
	outer, ok := t.(term.Abs)
	if !ok {
		return 0, false
	}
	inner, ok := outer.Body.(term.Abs)
	if !ok {
		return 0, false
	}
	n := 0
	cur := inner.Body
	for {
		if v, ok := cur.(term.Var); ok {
			if v.Index == 1 {
				return n, true
			}
			return 0, false
		}
		a, ok := cur.(term.App)
		if !ok {
			return 0, false
		}
		f, ok := a.Fun.(term.Var)
		if !ok || f.Index != 2 {
			return 0, false
		}
		n++
		cur = a.Arg
	}
}
