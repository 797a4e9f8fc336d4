package value

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		op     string
		left   Value
		right  Value
		expect Value
	}{
		{op: "+", left: NewScalar(2), right: NewScalar(3), expect: NewScalar(5)},
		{op: "-", left: NewScalar(2), right: NewScalar(3), expect: NewScalar(-1)},
		{op: "*", left: NewScalar(2), right: NewScalar(3), expect: NewScalar(6)},
		{op: "/", left: NewScalar(6), right: NewScalar(3), expect: NewScalar(2)},
		// Anything other than scalar-scalar soft-fails to Boolean(false);
		// Add never concatenates strings or arrays.
		{op: "+", left: NewString("a"), right: NewScalar(1), expect: NewBoolean(false)},
		{op: "+", left: NewString("a"), right: NewString("b"), expect: NewBoolean(false)},
		{op: "+", left: Parse("[1]"), right: Parse("[2]"), expect: NewBoolean(false)},
		{op: "*", left: NewScalar(2), right: Nil(), expect: NewBoolean(false)},
		{op: "/", left: NewBoolean(true), right: NewScalar(2), expect: NewBoolean(false)},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			var got Value
			switch test.op {
			case "+":
				got = test.left.Add(test.right)
			case "-":
				got = test.left.Sub(test.right)
			case "*":
				got = test.left.Mul(test.right)
			case "/":
				got = test.left.Div(test.right)
			}
			assert.True(t, got.Equals(test.expect), "got %s", got)
		})
	}
}

func TestRelational(t *testing.T) {
	v := NewScalar(3)
	require.True(t, v.Lt(4))
	require.False(t, v.Lt(3))
	require.True(t, v.Le(3))
	require.True(t, v.Gt(2))
	require.True(t, v.Ge(3))
	require.False(t, v.Ge(4))

	// Non-scalars compare false against every literal.
	s := NewString("3")
	require.False(t, s.Lt(4))
	require.False(t, s.Le(4))
	require.False(t, s.Gt(2))
	require.False(t, s.Ge(2))
}

func TestBooleanOps(t *testing.T) {
	require.True(t, NewBoolean(true).And(true))
	require.False(t, NewBoolean(true).And(false))
	require.False(t, NewBoolean(false).And(true))
	require.True(t, NewBoolean(false).Or(true))
	require.True(t, NewBoolean(true).Or(false))
	require.False(t, NewBoolean(false).Or(false))

	// Non-booleans soft-fail to false even with a truthy argument.
	require.False(t, NewScalar(1).And(true))
	require.False(t, NewScalar(1).Or(true))
}
