package value

// Equals tests two values for strict structural equality. Arrays compare
// element-wise and recurse. Scalars compare as exact float32 bit patterns
// would, with no epsilon. Strings compare case-sensitively.
func (v Value) Equals(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case NilKind:
		return true
	case BooleanKind:
		return v.boolean == other.boolean
	case ScalarKind:
		return v.scalar == other.scalar
	case StringKind:
		return v.str == other.str
	case ArrayKind:
		return equalItems(v.items, other.items)
	}
	return false
}

// EqualsFold is Equals with ASCII case-insensitive string comparison.
// Array elements still recurse through strict Equals, so strings nested
// inside arrays compare case-sensitively. Callers depend on that exact
// behavior; see the package tests.
func (v Value) EqualsFold(other Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}
	switch v.Kind() {
	case NilKind:
		return true
	case BooleanKind:
		return v.boolean == other.boolean
	case ScalarKind:
		return v.scalar == other.scalar
	case StringKind:
		return equalFoldASCII(v.str, other.str)
	case ArrayKind:
		return equalItems(v.items, other.items)
	}
	return false
}

// EqString reports whether the value is a string equal to s.
func (v Value) EqString(s string) bool {
	return v.Kind() == StringKind && v.str == s
}

// EqFloat reports whether the value is a scalar equal to f.
func (v Value) EqFloat(f float32) bool {
	return v.Kind() == ScalarKind && v.scalar == f
}

// EqSlice reports whether the value is an array whose elements strictly
// equal items.
func (v Value) EqSlice(items []Value) bool {
	return v.Kind() == ArrayKind && equalItems(v.items, items)
}

func equalItems(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerByte(a[i]) != lowerByte(b[i]) {
			return false
		}
	}
	return true
}

func lowerByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
