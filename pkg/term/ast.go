// Package term defines the nameless lambda calculus term model, its
// shifting and substitution algebra, and the bidirectional bridge between
// surface notation and the nameless representation.
package term

// Term is a lambda calculus term in the nameless (De Bruijn index)
// representation. A term is one of exactly three variants: Var, Abs or App.
// All variants are immutable value types, so comparing two terms with plain
// == is structural equality, which for the nameless representation coincides
// with alpha-equivalence. No renaming pass exists anywhere in this package
// because none is ever needed.
type Term interface {
	String() string
	term()
}

// Var references a binder by counting the abstractions crossed upward from
// the occurrence: index 1 is the nearest enclosing abstraction. An index
// larger than the number of enclosing abstractions denotes a free variable,
// identified by the index value alone.
type Var struct {
	Index int
}

// Abs is an abstraction. It owns its body and introduces exactly one binder.
type Abs struct {
	Body Term
}

// App is an application of Fun to Arg.
type App struct {
	Fun Term
	Arg Term
}

func (Var) term() {}
func (Abs) term() {}
func (App) term() {}

// NewVar builds a variable with the given index. The constructor is total:
// any index yields a structurally well-formed term, a "dangling" index is a
// free variable, not an error.
func NewVar(index int) Var { return Var{Index: index} }

// NewAbs wraps body in one binder.
func NewAbs(body Term) Abs { return Abs{Body: body} }

// NewApp applies fun to arg.
func NewApp(fun, arg Term) App { return App{Fun: fun, Arg: arg} }

// Equal reports structural equality of two terms. It is a readability
// wrapper: the variants are comparable value types, so a == b gives the
// same answer.
func Equal(a, b Term) bool { return a == b }
