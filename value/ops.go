package value

// Arithmetic is defined on scalars only. A kind mismatch on either side
// produces Boolean(false) instead of a scalar result; nothing fails. The
// type never concatenates strings or arrays through Add.

func (v Value) Add(other Value) Value {
	if v.Kind() != ScalarKind || other.Kind() != ScalarKind {
		return NewBoolean(false)
	}
	return NewScalar(v.scalar + other.scalar)
}

func (v Value) Sub(other Value) Value {
	if v.Kind() != ScalarKind || other.Kind() != ScalarKind {
		return NewBoolean(false)
	}
	return NewScalar(v.scalar - other.scalar)
}

func (v Value) Mul(other Value) Value {
	if v.Kind() != ScalarKind || other.Kind() != ScalarKind {
		return NewBoolean(false)
	}
	return NewScalar(v.scalar * other.scalar)
}

func (v Value) Div(other Value) Value {
	if v.Kind() != ScalarKind || other.Kind() != ScalarKind {
		return NewBoolean(false)
	}
	return NewScalar(v.scalar / other.scalar)
}

// The relational operators compare the scalar payload against a numeric
// literal and report false when the value is not a scalar.

func (v Value) Lt(f float32) bool {
	return v.Kind() == ScalarKind && v.scalar < f
}

func (v Value) Le(f float32) bool {
	return v.Kind() == ScalarKind && v.scalar <= f
}

func (v Value) Gt(f float32) bool {
	return v.Kind() == ScalarKind && v.scalar > f
}

func (v Value) Ge(f float32) bool {
	return v.Kind() == ScalarKind && v.scalar >= f
}

// And reports the conjunction of the boolean payload with b, or false
// when the value is not a boolean.
func (v Value) And(b bool) bool {
	return v.Kind() == BooleanKind && v.boolean && b
}

// Or reports the disjunction of the boolean payload with b, or false
// when the value is not a boolean.
func (v Value) Or(b bool) bool {
	if v.Kind() != BooleanKind {
		return false
	}
	return v.boolean || b
}
