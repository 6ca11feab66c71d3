package church

import "github.com/vic/debruijn/pkg/term"

// None - the empty option.
//
// NONE := λns.n = λ λ 2
func None() term.Term { return True() }

// Some consumes an argument and produces an option containing it.
//
// SOME := λans.s a = λ λ λ 1 3
func Some() term.Term { return absN(3, app(vr(1), vr(3))) }

// SomeOf wraps an already-built term directly into an option. The value
// moves under the option's two binders, so its free variables are shifted
// to keep pointing past them.
func SomeOf(t term.Term) term.Term {
	return absN(2, app(vr(1), term.Shift(t, 2, 1)))
}

// IsNone tests an option for emptiness, producing a Church boolean.
//
// IS_NONE := λa.a TRUE (λx.FALSE) = λ 1 TRUE (λ FALSE)
func IsNone() term.Term {
	return abs(app(vr(1), True(), abs(False())))
}

// IsSome tests an option for a contained value, producing a Church boolean.
//
// IS_SOME := λa.a FALSE (λx.TRUE) = λ 1 FALSE (λ TRUE)
func IsSome() term.Term {
	return abs(app(vr(1), False(), abs(True())))
}

// MapOption applies a function to the contents of an option, passing the
// empty option through unchanged.
//
// MAP := λfm.m NONE (λx.SOME (f x)) = λ λ 1 NONE (λ λ λ 1 (5 3))
func MapOption() term.Term {
	return absN(2, app(vr(1), None(), absN(3, app(vr(1), app(vr(5), vr(3))))))
}

// UnwrapOr extracts the value inside an option, or the supplied default
// when the option is empty.
//
// UNWRAP_OR := λdm.m d I = λ λ 1 2 (λ 1)
func UnwrapOr() term.Term {
	return absN(2, app(vr(1), vr(2), abs(vr(1))))
}
