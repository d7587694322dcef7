// Package value implements Monty's tagged runtime value: a small closed
// union over none, bool, arbitrary-precision int, float, and string,
// together with the coercion and operator tables spec'd for the
// language. Values are plain structs passed by copy — there is no
// aliasing between two variables holding "the same" value.
package value

import (
	"strconv"
	"strings"

	"monty/interpreter/pkg/bigint"
)

// Kind tags which variant a Value holds.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is the interpreter's runtime value. The zero Value is None.
type Value struct {
	kind Kind
	b    bool
	i    bigint.Int
	f    float64
	s    string
}

// None is the unit/none value.
var None = Value{kind: KindNone}

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps a BigInt.
func Int(i bigint.Int) Value { return Value{kind: KindInt, i: i} }

// Float wraps a float64.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the underlying bool; only meaningful when Kind() == KindBool.
func (v Value) AsBool() bool { return v.b }

// AsInt returns the underlying BigInt; only meaningful when Kind() == KindInt.
func (v Value) AsInt() bigint.Int { return v.i }

// AsFloat returns the underlying float64; only meaningful when Kind() == KindFloat.
func (v Value) AsFloat() float64 { return v.f }

// AsString returns the underlying string; only meaningful when Kind() == KindString.
func (v Value) AsString() string { return v.s }

//-----------------------------------------------------------------------------
// Coercions
//-----------------------------------------------------------------------------

// ToBool implements truthiness: none is false; bool is itself; int/float
// are their nonzero-ness; string is its non-emptiness.
func (v Value) ToBool() bool {
	switch v.kind {
	case KindNone:
		return false
	case KindBool:
		return v.b
	case KindInt:
		return v.i.ToBool()
	case KindFloat:
		return v.f != 0.0
	case KindString:
		return v.s != ""
	default:
		return false
	}
}

// ToInt coerces to an int Value. bool -> 0/1, int -> itself, float ->
// truncate toward zero, string -> trimmed then parsed as float (if it
// contains '.') or BigInt; a parse failure yields zero, matching the
// reference interpreter's catch-and-default behavior.
func (v Value) ToInt() Value {
	switch v.kind {
	case KindBool:
		if v.b {
			return Int(bigint.FromInt64(1))
		}
		return Int(bigint.FromInt64(0))
	case KindInt:
		return v
	case KindFloat:
		return Int(bigint.FromInt64(int64(v.f)))
	case KindString:
		s := strings.TrimSpace(v.s)
		if strings.Contains(s, ".") {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Int(bigint.Zero)
			}
			return Int(bigint.FromInt64(int64(f)))
		}
		if s == "" || !isIntegerLiteral(s) {
			return Int(bigint.Zero)
		}
		return Int(bigint.FromString(strings.TrimPrefix(s, "+")))
	default:
		return Int(bigint.Zero)
	}
}

func isIntegerLiteral(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ToFloat coerces to a float Value, using the host's standard double
// parser for strings; a parse failure yields 0.0.
func (v Value) ToFloat() Value {
	switch v.kind {
	case KindBool:
		if v.b {
			return Float(1.0)
		}
		return Float(0.0)
	case KindInt:
		return Float(v.i.ToFloat())
	case KindFloat:
		return v
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return Float(0.0)
		}
		return Float(f)
	default:
		return Float(0.0)
	}
}

// ToStr coerces to a string Value using the canonical display form.
func (v Value) ToStr() Value {
	if v.kind == KindString {
		return v
	}
	return String(v.Display())
}

// Display renders the canonical human-readable form used by print and
// f-string interpolation: None, True/False, BigInt decimal, float with
// six fixed fractional digits, or the string verbatim.
func (v Value) Display() string {
	switch v.kind {
	case KindNone:
		return "None"
	case KindBool:
		if v.b {
			return "True"
		}
		return "False"
	case KindInt:
		return v.i.String()
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', 6, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

func isNumeric(v Value) bool {
	return v.kind == KindInt || v.kind == KindFloat || v.kind == KindBool
}

func toFloat64(v Value) float64 {
	return v.ToFloat().f
}
