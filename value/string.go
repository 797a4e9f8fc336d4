package value

import (
	"strconv"
	"strings"
)

// ToString renders the value as SQF-Value-String text. With escape set,
// strings are wrapped in double quotes with embedded double quotes
// doubled; without it the raw string payload is emitted unquoted. The
// flag propagates into array elements. Scalars use the shortest decimal
// form that round-trips through float32.
func (v Value) ToString(escape bool) string {
	switch v.Kind() {
	case NilKind:
		return "nil"
	case BooleanKind:
		if v.boolean {
			return "true"
		}
		return "false"
	case ScalarKind:
		return strconv.FormatFloat(float64(v.scalar), 'g', -1, 32)
	case StringKind:
		if !escape {
			return v.str
		}
		return quote(v.str)
	case ArrayKind:
		var b strings.Builder
		b.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(item.ToString(escape))
		}
		b.WriteByte(']')
		return b.String()
	}
	return ""
}

// String implements fmt.Stringer as ToString with escaping on.
func (v Value) String() string {
	return v.ToString(true)
}

// quote wraps s in double quotes, doubling embedded double quotes. The
// inverse of the parser's doubled-delimiter escape, always in the
// double-quote style regardless of how the string was written.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2 + strings.Count(s, `"`))
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		b.WriteByte(s[i])
		if s[i] == '"' {
			b.WriteByte('"')
		}
	}
	b.WriteByte('"')
	return b.String()
}
