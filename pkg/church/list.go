package church

import "github.com/vic/debruijn/pkg/term"

// Lists are encoded over pairs: nil is a pair flagged empty, and a cons
// cell is a non-empty flag paired with a (head, tail) pair. This keeps
// head, tail and the emptiness test all expressible as pair projections.

// Nil - the empty list.
//
// NIL := PAIR TRUE TRUE
func Nil() term.Term { return app(Pair(), True(), True()) }

// Cons prepends a head to a list.
//
// CONS := λht.PAIR FALSE (PAIR h t) = λ λ PAIR FALSE (PAIR 2 1)
func Cons() term.Term {
	return absN(2, app(Pair(), False(), app(Pair(), vr(2), vr(1))))
}

// IsNil tests a list for emptiness, producing a Church boolean.
//
// IS_NIL := FST
func IsNil() term.Term { return First() }

// Head projects the head of a non-empty list.
//
// HEAD := λl.FST (SND l) = λ FST (SND 1)
func Head() term.Term { return abs(app(First(), app(Second(), vr(1)))) }

// Tail projects the tail of a non-empty list.
//
// TAIL := λl.SND (SND l) = λ SND (SND 1)
func Tail() term.Term { return abs(app(Second(), app(Second(), vr(1)))) }

// ToChurchList encodes a Go slice of terms as a list, rightmost element
// deepest. Elements sit in argument position of CONS applications, under no
// extra binders, so open terms need no index adjustment.
func ToChurchList(elems []term.Term) term.Term {
	t := Nil()
	for i := len(elems) - 1; i >= 0; i-- {
		t = app(Cons(), elems[i], t)
	}
	return t
}
