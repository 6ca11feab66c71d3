package church

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/debruijn/pkg/term"
)

func TestToChurchFromChurchRoundTrip(t *testing.T) {
	for n := 0; n <= 10; n++ {
		got, ok := FromChurch(ToChurch(n))
		require.True(t, ok, "numeral %d did not decode", n)
		assert.Equal(t, n, got)
	}
}

func TestFromChurchRejectsNonNumerals(t *testing.T) {
	for _, tm := range []term.Term{
		term.Var{Index: 1},
		I(),
		True(), // λ λ 2 applies nothing, but 2 is not in function position n times
		absN(2, app(vr(1), vr(2))),
	} {
		if term.Equal(tm, ToChurch(0)) || term.Equal(tm, ToChurch(1)) {
			continue
		}
		_, ok := FromChurch(tm)
		assert.False(t, ok, "%v decoded as a numeral", tm)
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		expr term.Term
		want int
	}{
		{"succ zero", app(Succ(), Zero()), 1},
		{"succ one", app(Succ(), One()), 2},
		{"2 + 3", app(Plus(), ToChurch(2), ToChurch(3)), 5},
		{"0 + 4", app(Plus(), Zero(), ToChurch(4)), 4},
		{"2 * 3", app(Mult(), ToChurch(2), ToChurch(3)), 6},
		{"3 * 0", app(Mult(), ToChurch(3), Zero()), 0},
		{"2 ^ 3", app(Pow(), ToChurch(2), ToChurch(3)), 8},
		{"3 ^ 1", app(Pow(), ToChurch(3), One()), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromChurch(nf(t, tt.expr))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsZero(t *testing.T) {
	assert.Equal(t, True(), nf(t, app(IsZero(), Zero())))
	assert.Equal(t, False(), nf(t, app(IsZero(), One())))
	assert.Equal(t, False(), nf(t, app(IsZero(), ToChurch(5))))
}

func TestBooleans(t *testing.T) {
	tests := []struct {
		name string
		expr term.Term
		want bool
	}{
		{"not true", app(Not(), True()), false},
		{"not false", app(Not(), False()), true},
		{"true and true", app(And(), True(), True()), true},
		{"true and false", app(And(), True(), False()), false},
		{"false and true", app(And(), False(), True()), false},
		{"false or false", app(Or(), False(), False()), false},
		{"false or true", app(Or(), False(), True()), true},
		{"true or false", app(Or(), True(), False()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromChurchBool(nf(t, tt.expr))
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// If selects a branch without reducing the other; the untaken branch here
// is free variable 2, which must not leak into the result.
func TestIf(t *testing.T) {
	a, b := term.Var{Index: 1}, term.Var{Index: 2}
	assert.Equal(t, term.Term(a), nf(t, app(If(), True(), a, b)))
	assert.Equal(t, term.Term(b), nf(t, app(If(), False(), a, b)))
}

func TestPairProjections(t *testing.T) {
	a, b := term.Var{Index: 1}, term.Var{Index: 2}
	pair := app(Pair(), a, b)
	assert.Equal(t, term.Term(a), nf(t, app(First(), pair)))
	assert.Equal(t, term.Term(b), nf(t, app(Second(), pair)))
}

func TestLists(t *testing.T) {
	one, two := ToChurch(1), ToChurch(2)
	list := ToChurchList([]term.Term{one, two})

	isNil, ok := FromChurchBool(nf(t, app(IsNil(), Nil())))
	require.True(t, ok)
	assert.True(t, isNil)

	isNil, ok = FromChurchBool(nf(t, app(IsNil(), list)))
	require.True(t, ok)
	assert.False(t, isNil)

	head, ok := FromChurch(nf(t, app(Head(), list)))
	require.True(t, ok)
	assert.Equal(t, 1, head)

	second, ok := FromChurch(nf(t, app(Head(), app(Tail(), list))))
	require.True(t, ok)
	assert.Equal(t, 2, second)

	rest := nf(t, app(Tail(), app(Tail(), list)))
	assert.Equal(t, nf(t, Nil()), rest)
}

func TestOptions(t *testing.T) {
	someOne := SomeOf(One())

	got, ok := FromChurchBool(nf(t, app(IsNone(), None())))
	require.True(t, ok)
	assert.True(t, got)

	got, ok = FromChurchBool(nf(t, app(IsNone(), someOne)))
	require.True(t, ok)
	assert.False(t, got)

	got, ok = FromChurchBool(nf(t, app(IsSome(), someOne)))
	require.True(t, ok)
	assert.True(t, got)

	got, ok = FromChurchBool(nf(t, app(IsSome(), None())))
	require.True(t, ok)
	assert.False(t, got)
}

func TestMapOption(t *testing.T) {
	assert.Equal(t,
		nf(t, SomeOf(ToChurch(2))),
		nf(t, app(MapOption(), Succ(), SomeOf(One()))),
		"mapping succ over Some 1 gives Some 2")
	assert.Equal(t,
		None(),
		nf(t, app(MapOption(), Succ(), None())),
		"mapping over None stays None")
}

func TestUnwrapOr(t *testing.T) {
	one, ok := FromChurch(nf(t, app(UnwrapOr(), ToChurch(9), SomeOf(One()))))
	require.True(t, ok)
	assert.Equal(t, 1, one)

	dflt, ok := FromChurch(nf(t, app(UnwrapOr(), ToChurch(9), None())))
	require.True(t, ok)
	assert.Equal(t, 9, dflt)
}

// SomeOf must keep free variables of an open payload pointing at the same
// binders after moving it under the option's two binders.
func TestSomeOfShiftsOpenTerms(t *testing.T) {
	open := term.Var{Index: 1}
	want := absN(2, app(vr(1), vr(3)))
	assert.Equal(t, term.Term(want), term.Term(SomeOf(open)))
}
