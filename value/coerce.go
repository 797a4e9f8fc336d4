package value

// The read accessors are total: a kind mismatch yields the zero value of
// the requested type rather than an error. Host code relies on this.

func (v Value) Float() float32 {
	if v.Kind() != ScalarKind {
		return 0
	}
	return v.scalar
}

func (v Value) Bool() bool {
	if v.Kind() != BooleanKind {
		return false
	}
	return v.boolean
}

func (v Value) Str() string {
	if v.Kind() != StringKind {
		return ""
	}
	return v.str
}

// Items returns the backing element slice for arrays and nil otherwise.
// Callers that need an independent copy should Clone first.
func (v Value) Items() []Value {
	if v.Kind() != ArrayKind {
		return nil
	}
	return v.items
}

// CoerceFloat forces the value into the scalar kind. On a kind mismatch
// the previous content is discarded and replaced with Scalar(0) before the
// payload is returned. Use Float for the non-destructive read.
func (v *Value) CoerceFloat() float32 {
	if v.Kind() != ScalarKind {
		*v = NewScalar(0)
	}
	return v.scalar
}

// CoerceBool forces the value into the boolean kind, discarding mismatched
// content. See CoerceFloat.
func (v *Value) CoerceBool() bool {
	if v.Kind() != BooleanKind {
		*v = NewBoolean(false)
	}
	return v.boolean
}

// CoerceString forces the value into the string kind, discarding
// mismatched content. See CoerceFloat.
func (v *Value) CoerceString() string {
	if v.Kind() != StringKind {
		*v = NewString("")
	}
	return v.str
}

// CoerceItems forces the value into the array kind, discarding mismatched
// content, and returns a pointer to the element slice for in-place edits.
func (v *Value) CoerceItems() *[]Value {
	if v.Kind() != ArrayKind {
		*v = Value{kind: ArrayKind}
	}
	return &v.items
}
