package church

import "github.com/vic/debruijn/pkg/term"

// True - the Church boolean true, structurally identical to K.
//
// TRUE := λab.a = λ λ 2
func True() term.Term { return absN(2, vr(2)) }

// False - the Church boolean false, structurally identical to Zero.
//
// FALSE := λab.b = λ λ 1
func False() term.Term { return absN(2, vr(1)) }

// Not negates a Church boolean.
//
// NOT := λp.p FALSE TRUE = λ 1 FALSE TRUE
func Not() term.Term { return abs(app(vr(1), False(), True())) }

// And - conjunction of Church booleans.
//
// AND := λpq.p q p = λ λ 2 1 2
func And() term.Term { return absN(2, app(vr(2), vr(1), vr(2))) }

// Or - disjunction of Church booleans.
//
// OR := λpq.p p q = λ λ 2 2 1
func Or() term.Term { return absN(2, app(vr(2), vr(2), vr(1))) }

// If - the conditional; applied to a Church boolean and two branches it
// selects a branch. Under normal order the untaken branch is discarded
// without being reduced.
//
// IF := λpab.p a b = λ λ λ 3 2 1
func If() term.Term { return absN(3, app(vr(3), vr(2), vr(1))) }

// ToChurchBool encodes a Go bool.
func ToChurchBool(b bool) term.Term {
	if b {
		return True()
	}
	return False()
}

// FromChurchBool decodes a term in normal form back to a Go bool. The
// second result is false when the term is not a Church boolean.
func FromChurchBool(t term.Term) (bool, bool) {
	switch {
	case term.Equal(t, True()):
		return true, true
	case term.Equal(t, False()):
		return false, true
	default:
		return false, false
	}
}
