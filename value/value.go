// Package value implements the dynamic value type behind SQF-Value-Strings:
// a closed five-variant union of nil, boolean, scalar, string, and array,
// together with a parser and serializer for the textual literal form.
package value

const (
	NilKind     = Kind("nil")
	BooleanKind = Kind("boolean")
	ScalarKind  = Kind("scalar")
	StringKind  = Kind("string")
	ArrayKind   = Kind("array")
)

type Kind string

// Value holds exactly one of the five kinds at a time. The zero Value is
// nil-kinded and ready to use.
type Value struct {
	kind    Kind
	boolean bool
	scalar  float32
	str     string
	items   []Value
}

func (v Value) Kind() Kind {
	if v.kind == "" {
		return NilKind
	}
	return v.kind
}

func Nil() Value {
	return Value{kind: NilKind}
}

func NewBoolean(b bool) Value {
	return Value{kind: BooleanKind, boolean: b}
}

func NewScalar(f float32) Value {
	return Value{kind: ScalarKind, scalar: f}
}

// NewScalarFloat64 narrows to float32. All numeric constructors funnel
// through the single binary32 scalar representation.
func NewScalarFloat64(f float64) Value {
	return NewScalar(float32(f))
}

func NewScalarInt(i int) Value {
	return NewScalar(float32(i))
}

func NewString(s string) Value {
	return Value{kind: StringKind, str: s}
}

// NewArray builds an array value from deep copies of items, so later
// mutation of the originals does not show through.
func NewArray(items ...Value) Value {
	return NewArrayFromSlice(items)
}

func NewArrayFromSlice(items []Value) Value {
	copied := make([]Value, len(items))
	for i, item := range items {
		copied[i] = item.Clone()
	}
	return Value{kind: ArrayKind, items: copied}
}

// NewValue converts a native Go value into a Value. Unsupported types map
// to nil, in keeping with the type's soft-fail contract.
func NewValue(v any) Value {
	switch n := v.(type) {
	case nil:
		return Nil()
	case Value:
		return n.Clone()
	case bool:
		return NewBoolean(n)
	case float32:
		return NewScalar(n)
	case float64:
		return NewScalarFloat64(n)
	case int:
		return NewScalarInt(n)
	case int8:
		return NewScalar(float32(n))
	case int16:
		return NewScalar(float32(n))
	case int32:
		return NewScalar(float32(n))
	case int64:
		return NewScalar(float32(n))
	case uint:
		return NewScalar(float32(n))
	case uint8:
		return NewScalar(float32(n))
	case uint16:
		return NewScalar(float32(n))
	case uint32:
		return NewScalar(float32(n))
	case uint64:
		return NewScalar(float32(n))
	case string:
		return NewString(n)
	case []Value:
		return NewArrayFromSlice(n)
	case []any:
		items := make([]Value, 0, len(n))
		for _, item := range n {
			items = append(items, NewValue(item))
		}
		return Value{kind: ArrayKind, items: items}
	}
	return Nil()
}

func (v Value) IsNil() bool {
	return v.Kind() == NilKind
}

func (v Value) IsBoolean() bool {
	return v.Kind() == BooleanKind
}

func (v Value) IsScalar() bool {
	return v.Kind() == ScalarKind
}

func (v Value) IsString() bool {
	return v.Kind() == StringKind
}

func (v Value) IsArray() bool {
	return v.Kind() == ArrayKind
}

// At returns a pointer to the i-th array element for in-place access.
// It panics when the value is not an array or i is out of range.
func (v *Value) At(i int) *Value {
	if v.Kind() != ArrayKind {
		panic("value: At called on non-array value")
	}
	return &v.items[i]
}

// Len returns the element count for arrays and 0 for every other kind.
func (v Value) Len() int {
	if v.Kind() != ArrayKind {
		return 0
	}
	return len(v.items)
}

// Clone returns a deep copy. Array elements are copied transitively.
func (v Value) Clone() Value {
	if v.Kind() != ArrayKind {
		return v
	}
	items := make([]Value, len(v.items))
	for i, item := range v.items {
		items[i] = item.Clone()
	}
	return Value{kind: ArrayKind, items: items}
}

// NativeValue converts to the natural Go representation: nil, bool,
// float32, string, or []any.
func (v Value) NativeValue() any {
	switch v.Kind() {
	case NilKind:
		return nil
	case BooleanKind:
		return v.boolean
	case ScalarKind:
		return v.scalar
	case StringKind:
		return v.str
	case ArrayKind:
		result := make([]any, 0, len(v.items))
		for _, item := range v.items {
			result = append(result, item.NativeValue())
		}
		return result
	}
	return nil
}
