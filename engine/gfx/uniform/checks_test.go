package uniform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcleary/doge/engine/gfx/uniform"
)

type namedValue[T uniform.Value] struct {
	name  string
	value T
}

// checkSameOnDevice verifies through an independent read-only proxy that
// a's cached value actually reached the device.
func checkSameOnDevice[T uniform.Value](t *testing.T, p *fakeProgram, name string, a *uniform.Uniform[T]) {
	t.Helper()
	ro, err := uniform.NewReadOnly[T](p, name)
	require.NoError(t, err)
	assert.True(t, uniform.Equal[T](a, ro))
}

// checkConstructors exercises push-initialized, pull-initialized and
// read-only construction plus the two failure kinds.
func checkConstructors[T uniform.Value](t *testing.T, p *fakeProgram, u namedValue[T]) (*uniform.Uniform[T], *uniform.ReadOnly[T]) {
	t.Helper()

	a, err := uniform.NewValue(p, u.name, u.value)
	require.NoError(t, err)
	assert.Equal(t, u.value, a.Value())

	b, err := uniform.New[T](p, u.name)
	require.NoError(t, err)
	assert.Equal(t, a.Value(), b.Value())

	c, err := uniform.NewReadOnly[T](p, u.name)
	require.NoError(t, err)
	assert.Equal(t, a.Value(), c.Value())

	_, err = uniform.NewValue(p, "dne", u.value)
	assert.ErrorIs(t, err, uniform.ErrNotFound)
	_, err = uniform.New[T](p, "dne")
	assert.ErrorIs(t, err, uniform.ErrNotFound)
	_, err = uniform.NewReadOnly[T](p, "dne")
	assert.ErrorIs(t, err, uniform.ErrNotFound)

	var typeErr *uniform.TypeError
	_, err = uniform.NewValue(p, "bad_type", u.value)
	assert.ErrorAs(t, err, &typeErr)
	assert.NotErrorIs(t, err, uniform.ErrNotFound)

	return a, c
}

// checkEquivalence verifies == / != form an equivalence relation over any
// mix of operand kinds.
func checkEquivalence[T uniform.Value](t *testing.T, eq1, eq2, eq3, neq uniform.Source[T]) {
	t.Helper()

	// reflexivity
	assert.True(t, uniform.Equal[T](eq1, eq1))
	assert.False(t, uniform.NotEqual[T](eq1, eq1))

	// symmetry
	assert.True(t, uniform.Equal[T](eq1, eq2))
	assert.True(t, uniform.Equal[T](eq2, eq1))
	assert.False(t, uniform.Equal[T](eq1, neq))
	assert.False(t, uniform.Equal[T](neq, eq1))

	// transitivity
	assert.True(t, uniform.Equal[T](eq2, eq3))
	assert.True(t, uniform.Equal[T](eq1, eq3))
	assert.True(t, uniform.NotEqual[T](eq3, neq))
	assert.False(t, uniform.NotEqual[T](eq1, eq3))
}

// checkTotalOrder verifies the four comparison operators behave as a total
// order for low < mid < high, with low1..low3 equal operands of differing
// kinds.
func checkTotalOrder[T uniform.Ordered](t *testing.T, low1, low2, low3, mid, high uniform.Source[T]) {
	t.Helper()

	// anti-reflexivity of the strict operators
	assert.False(t, uniform.Less[T](low1, low1))
	assert.False(t, uniform.Greater[T](low1, low1))

	// anti-symmetry
	assert.True(t, uniform.Less[T](low1, mid))
	assert.False(t, uniform.Less[T](mid, low1))
	assert.True(t, uniform.Greater[T](high, mid))
	assert.False(t, uniform.Greater[T](mid, high))

	// transitivity
	assert.True(t, uniform.Less[T](mid, high))
	assert.True(t, uniform.Less[T](low1, high))
	assert.True(t, uniform.Greater[T](high, low1))

	assert.True(t, uniform.LessEqual[T](low1, mid))
	assert.True(t, uniform.LessEqual[T](mid, high))
	assert.True(t, uniform.LessEqual[T](low1, high))
	assert.False(t, uniform.LessEqual[T](high, low1))
	assert.True(t, uniform.GreaterEqual[T](high, mid))
	assert.False(t, uniform.GreaterEqual[T](low1, mid))

	// reflexivity of the inclusive operators on equal operands
	assert.True(t, uniform.LessEqual[T](low1, low2))
	assert.True(t, uniform.LessEqual[T](low2, low1))
	assert.True(t, uniform.LessEqual[T](low2, low3))
	assert.True(t, uniform.LessEqual[T](low1, low3))
	assert.True(t, uniform.GreaterEqual[T](low1, low2))
	assert.True(t, uniform.GreaterEqual[T](low1, low3))
}

// checkCompoundAssignment runs += -= *= /= against rhs and verifies both
// the cache and the device after each step.
func checkCompoundAssignment[T uniform.Ordered](t *testing.T, p *fakeProgram, a *uniform.Uniform[T], name string, rhs uniform.Source[T]) {
	t.Helper()

	expected := uniform.Add[T](a, rhs)
	a.AddAssign(rhs)
	assert.Equal(t, expected, a.Value())
	checkSameOnDevice(t, p, name, a)

	expected = uniform.Sub[T](a, rhs)
	a.SubAssign(rhs)
	assert.Equal(t, expected, a.Value())
	checkSameOnDevice(t, p, name, a)

	expected = uniform.Mul[T](a, rhs)
	a.MulAssign(rhs)
	assert.Equal(t, expected, a.Value())
	checkSameOnDevice(t, p, name, a)

	expected = uniform.Div[T](a, rhs)
	uniform.DivAssign(a, rhs)
	assert.Equal(t, expected, a.Value())
	checkSameOnDevice(t, p, name, a)
}

func checkModAssignment[T uniform.Integer](t *testing.T, p *fakeProgram, a *uniform.Uniform[T], name string, rhs uniform.Source[T]) {
	t.Helper()

	expected := uniform.Mod[T](a, rhs)
	uniform.ModAssign(a, rhs)
	assert.Equal(t, expected, a.Value())
	checkSameOnDevice(t, p, name, a)
}

// checkIncDec verifies prefix/postfix semantics: postfix returns the
// pre-mutation value while the device already holds the new one.
func checkIncDec[T uniform.Value](t *testing.T, p *fakeProgram, name string, a *uniform.Uniform[T], one T) {
	t.Helper()

	x := a.Value()
	xPlus1 := uniform.Add[T](uniform.V(x), uniform.V(one))

	assert.Equal(t, x, a.PostInc())
	assert.Equal(t, xPlus1, a.Value())
	checkSameOnDevice(t, p, name, a)

	xPlus2 := uniform.Add[T](uniform.V(xPlus1), uniform.V(one))
	assert.Equal(t, xPlus2, a.Inc())
	assert.Equal(t, xPlus2, a.Value())
	checkSameOnDevice(t, p, name, a)

	assert.Equal(t, xPlus2, a.PostDec())
	assert.Equal(t, xPlus1, a.Value())
	assert.Equal(t, x, a.Dec())
	assert.Equal(t, x, a.Value())
	checkSameOnDevice(t, p, name, a)
}

// checkCommutative verifies a op b == b op a for the commutative operators
// regardless of operand kind.
func checkCommutative[T uniform.Value](t *testing.T, a, b uniform.Source[T]) {
	t.Helper()
	assert.Equal(t, uniform.Add[T](a, b), uniform.Add[T](b, a))
	assert.Equal(t, uniform.Equal[T](a, b), uniform.Equal[T](b, a))
}

func checkUnary[T uniform.Value](t *testing.T, a uniform.Source[T]) {
	t.Helper()
	assert.Equal(t, a.Value(), uniform.Pos[T](a))
	assert.Equal(t, uniform.Neg[T](uniform.V(a.Value())), uniform.Neg[T](a))
	// double negation is identity
	assert.Equal(t, a.Value(), uniform.Neg[T](uniform.V(uniform.Neg[T](a))))
}
