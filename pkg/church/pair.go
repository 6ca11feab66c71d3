package church

import "github.com/vic/debruijn/pkg/term"

// Pair - the Church pair constructor.
//
// PAIR := λxyf.f x y = λ λ λ 1 3 2
func Pair() term.Term { return absN(3, app(vr(1), vr(3), vr(2))) }

// First projects the first component of a Church pair.
//
// FST := λp.p TRUE = λ 1 TRUE
func First() term.Term { return abs(app(vr(1), True())) }

// Second projects the second component of a Church pair.
//
// SND := λp.p FALSE = λ 1 FALSE
func Second() term.Term { return abs(app(vr(1), False())) }
