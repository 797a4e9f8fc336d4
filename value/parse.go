package value

import (
	"strconv"
	"strings"
)

// Parse converts SQF-Value-String text into a Value. Empty input parses
// as nil. The parser is deliberately lenient: bytes that cannot start a
// value are skipped one at a time (which is also how whitespace and the
// commas between array elements are consumed), and malformed input
// degenerates to a partial value or nil rather than an error. Trailing
// text after the first complete value is ignored.
func Parse(text string) Value {
	s := scanner{src: text}
	return s.scanValue()
}

// scanner is a cursor over the input. All scanXXX methods advance pos
// past whatever they consumed.
type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.src)
}

// scanValue dispatches on the byte under the cursor. Unrecognized bytes
// put the scanner in its skip state: advance one byte and retry, nil on
// exhaustion.
func (s *scanner) scanValue() Value {
	for !s.done() {
		switch c := s.src[s.pos]; {
		case c == '[':
			return s.scanArray()
		case c == '"' || c == '\'':
			return s.scanString()
		case c == 't' || c == 'f':
			return s.scanBoolean()
		case c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.':
			if n := floatPrefixLen(s.src[s.pos:]); n > 0 {
				f, _ := strconv.ParseFloat(s.src[s.pos:s.pos+n], 32)
				s.pos += n
				return NewScalar(float32(f))
			}
			// A sign or dot not followed by a digit is skipped like any
			// other unrecognized byte.
			s.pos++
		default:
			s.pos++
		}
	}
	return Nil()
}

// scanArray consumes values until the closing bracket. Running out of
// input before the bracket discards everything read and yields nil.
func (s *scanner) scanArray() Value {
	s.pos++ // opening [
	items := []Value{}
	for !s.done() {
		if s.src[s.pos] == ']' {
			s.pos++
			return Value{kind: ArrayKind, items: items}
		}
		items = append(items, s.scanValue())
	}
	return Nil()
}

// scanString consumes a string delimited by the byte under the cursor,
// either " or '. A doubled delimiter inside the body is the escape for a
// literal delimiter byte. An unterminated string yields whatever body was
// accumulated before the input ran out.
func (s *scanner) scanString() Value {
	delim := s.src[s.pos]
	s.pos++
	var b strings.Builder
	for !s.done() {
		c := s.src[s.pos]
		if c == delim {
			if s.pos+1 < len(s.src) && s.src[s.pos+1] == delim {
				b.WriteByte(delim)
				s.pos += 2
				continue
			}
			s.pos++
			break
		}
		b.WriteByte(c)
		s.pos++
	}
	return NewString(b.String())
}

// scanBoolean consumes a true-shaped token (4 bytes) on 't' and a
// false-shaped token (5 bytes) otherwise. The remaining letters are not
// validated, so "txyz" parses as true.
func (s *scanner) scanBoolean() Value {
	if s.src[s.pos] == 't' {
		s.pos += 4
		return NewBoolean(true)
	}
	s.pos += 5
	return NewBoolean(false)
}

// floatPrefixLen returns the length of the longest prefix of s that forms
// a decimal float literal (optional sign, digits with optional fraction,
// optional exponent), or 0 when no digit is present.
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
