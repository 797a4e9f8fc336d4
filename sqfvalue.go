// Package sqfvalue reads and writes SQF-Value-Strings, the textual
// literal form of the dynamic value type in the value package.
package sqfvalue

import (
	"fmt"

	"github.com/Leopard20/sqf-value/value"
)

// Unmarshal parses data as an SQF-Value-String and stores the result in
// out, which must be a pointer to value.Value, []value.Value, or one of
// the native payload types (any, bool, float32, string). Native targets
// go through the value type's soft-cast accessors, so a kind mismatch
// leaves the zero value in out rather than failing.
func Unmarshal(data []byte, out any) error {
	v := value.Parse(string(data))
	switch n := out.(type) {
	case *value.Value:
		*n = v
	case *[]value.Value:
		*n = v.Items()
	case *any:
		*n = v.NativeValue()
	case *bool:
		*n = v.Bool()
	case *float32:
		*n = v.Float()
	case *string:
		*n = v.Str()
	default:
		return fmt.Errorf("cannot unmarshal SQF value into %T", out)
	}
	return nil
}

// Marshal renders v as escaped SQF-Value-String text. v may be a
// value.Value or any native Go value accepted by value.NewValue;
// unsupported types render as nil.
func Marshal(v any) []byte {
	return []byte(value.NewValue(v).ToString(true))
}

// Format parses data and re-emits it in canonical form: skipped bytes
// dropped, single-quote strings rewritten to the double-quote style, and
// array elements comma-separated.
func Format(data []byte) []byte {
	return []byte(value.Parse(string(data)).ToString(true))
}
