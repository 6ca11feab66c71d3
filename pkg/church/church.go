// Package church builds the standard library of pre-encoded lambda terms:
// combinators, Church numerals, booleans, pairs, lists and options. Every
// value here is an ordinary nameless term assembled purely from the public
// term constructors; reducing them goes through the same engine as any
// other term.
//
// Doc comments give each term in both classic notation and the nameless
// form, e.g. K := λxy.x = λ λ 2.
package church

import "github.com/vic/debruijn/pkg/term"

func vr(i int) term.Term { return term.Var{Index: i} }

func abs(body term.Term) term.Term { return term.Abs{Body: body} }

// absN wraps body in n binders.
func absN(n int, body term.Term) term.Term {
	for i := 0; i < n; i++ {
		body = term.Abs{Body: body}
	}
	return body
}

// app folds a chain of applications left-associatively.
func app(ts ...term.Term) term.Term {
	t := ts[0]
	for _, u := range ts[1:] {
		t = term.App{Fun: t, Arg: u}
	}
	return t
}
