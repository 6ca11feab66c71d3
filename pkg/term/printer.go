package term

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the nameless form: indices as decimal integers, the λ
// marker for binders, application by juxtaposition. The output parses back
// to a structurally identical term.
func (v Var) String() string { return strconv.Itoa(v.Index) }

func (a Abs) String() string { return "λ " + a.Body.String() }

func (a App) String() string {
	var b strings.Builder
	// An abstraction in function position must be parenthesized or its
	// body would swallow the argument; in argument position both
	// abstractions and applications need grouping to survive the
	// left-associative reading.
	writeOperand(&b, a.Fun, false)
	b.WriteByte(' ')
	writeOperand(&b, a.Arg, true)
	return b.String()
}

func writeOperand(b *strings.Builder, t Term, argPos bool) {
	paren := false
	switch t.(type) {
	case Abs:
		paren = true
	case App:
		paren = argPos
	}
	if paren {
		b.WriteByte('(')
		b.WriteString(t.String())
		b.WriteByte(')')
	} else {
		b.WriteString(t.String())
	}
}

// PrintNamed reconstructs a readable named form. Each binder gets a fresh
// deterministic name derived from its depth (x0 for the outermost binder
// entered, x1 under it, and so on), and bound variables render via the name
// at their binder's depth. Free indices never had a name recorded, so index
// k at depth d falls back to the stable token f<k-d>. Printing is total.
func PrintNamed(t Term) string {
	var b strings.Builder
	writeNamed(&b, t, 0, false, false)
	return b.String()
}

func writeNamed(b *strings.Builder, t Term, depth int, funPos, argPos bool) {
	switch v := t.(type) {
	case Var:
		if v.Index > depth {
			fmt.Fprintf(b, "f%d", v.Index-depth)
		} else {
			fmt.Fprintf(b, "x%d", depth-v.Index)
		}
	case Abs:
		paren := funPos || argPos
		if paren {
			b.WriteByte('(')
		}
		fmt.Fprintf(b, "λx%d. ", depth)
		writeNamed(b, v.Body, depth+1, false, false)
		if paren {
			b.WriteByte(')')
		}
	case App:
		if argPos {
			b.WriteByte('(')
		}
		writeNamed(b, v.Fun, depth, true, false)
		b.WriteByte(' ')
		writeNamed(b, v.Arg, depth, false, true)
		if argPos {
			b.WriteByte(')')
		}
	}
}
