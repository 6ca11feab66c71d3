package church

import "github.com/vic/debruijn/pkg/term"

// I - the identity combinator.
//
// I := λx.x = λ 1
func I() term.Term { return abs(vr(1)) }

// K - the constant / discarding combinator, also Church TRUE.
//
// K := λxy.x = λ λ 2
func K() term.Term { return absN(2, vr(2)) }

// S - the substitution combinator.
//
// S := λxyz.x z (y z) = λ λ λ 3 1 (2 1)
func S() term.Term {
	return absN(3, app(vr(3), vr(1), app(vr(2), vr(1))))
}

// Iota - the universal combinator.
//
// ι := λx.x S K = λ 1 S K
func Iota() term.Term { return abs(app(vr(1), S(), K())) }

// B - the composition combinator.
//
// B := λxyz.x (y z) = λ λ λ 3 (2 1)
func B() term.Term {
	return absN(3, app(vr(3), app(vr(2), vr(1))))
}

// C - the swapping combinator.
//
// C := λxyz.x z y = λ λ λ 3 1 2
func C() term.Term { return absN(3, app(vr(3), vr(1), vr(2))) }

// W - the duplicating combinator.
//
// W := λxy.x y y = λ λ 2 1 1
func W() term.Term { return absN(2, app(vr(2), vr(1), vr(1))) }

// SelfApply - the looping combinator ω.
//
// ω := λx.x x = λ 1 1
func SelfApply() term.Term { return abs(app(vr(1), vr(1))) }

// Omega - the divergent combinator Ω. It has no normal form: every
// contraction reproduces the term, so reducing it only ever ends at the
// step cap.
//
// Ω := ω ω
func Omega() term.Term { return app(SelfApply(), SelfApply()) }

// Y - the fixed-point combinator.
//
// Y := λg.(λx.g (x x)) (λx.g (x x)) = λ (λ 2 (1 1)) (λ 2 (1 1))
func Y() term.Term {
	half := abs(app(vr(2), app(vr(1), vr(1))))
	return abs(app(half, half))
}
