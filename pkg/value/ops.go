package value

import (
	"math"

	"monty/interpreter/pkg/bigint"
)

// Add implements '+': string concatenation of display forms when either
// operand is a string, else float arithmetic when either operand is a
// float, else BigInt addition when both are int. Any other combination
// yields None, per the language's lenient type-mismatch policy.
func Add(a, b Value) Value {
	if a.kind == KindString || b.kind == KindString {
		return String(a.Display() + b.Display())
	}
	if a.kind == KindFloat || b.kind == KindFloat {
		return Float(toFloat64(a) + toFloat64(b))
	}
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i.Add(b.i))
	}
	return None
}

// Sub implements '-': float arithmetic when either operand is a float
// (the other side coerced to float), BigInt subtraction when both are
// int, else None.
func Sub(a, b Value) Value {
	if a.kind == KindFloat || b.kind == KindFloat {
		return Float(toFloat64(a) - toFloat64(b))
	}
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i.Sub(b.i))
	}
	return None
}

// Mul implements '*': string repetition when one side is a string and
// the other an int, float arithmetic when either side is a float,
// BigInt multiplication when both are int.
func Mul(a, b Value) Value {
	if a.kind == KindString && b.kind == KindInt {
		return String(repeatString(a.s, b.i))
	}
	if a.kind == KindInt && b.kind == KindString {
		return String(repeatString(b.s, a.i))
	}
	if a.kind == KindFloat || b.kind == KindFloat {
		return Float(toFloat64(a) * toFloat64(b))
	}
	if a.kind == KindInt && b.kind == KindInt {
		return Int(a.i.Mul(b.i))
	}
	return None
}

func repeatString(s string, n bigint.Int) string {
	if n.Negative || n.IsZero() {
		return ""
	}
	count := int(n.ToFloat())
	if count <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*count)
	for i := 0; i < count; i++ {
		out = append(out, s...)
	}
	return string(out)
}

// TrueDiv implements '/': always float division of both operands
// coerced to float, per IEEE-754 (may yield +/-Inf or NaN).
func TrueDiv(a, b Value) Value {
	return Float(toFloat64(a) / toFloat64(b))
}

// FloorDiv implements '//': BigInt floor division when both operands
// are int (fails on zero divisor), otherwise the floor of float
// division.
func FloorDiv(a, b Value) (Value, error) {
	if a.kind == KindInt && b.kind == KindInt {
		q, err := a.i.Div(b.i)
		if err != nil {
			return None, err
		}
		return Int(q), nil
	}
	return Float(math.Floor(toFloat64(a) / toFloat64(b))), nil
}

// Mod implements '%': BigInt modulo (sign of divisor) when both
// operands are int, else None — mixed-type modulo is left undefined
// by this language subset.
func Mod(a, b Value) (Value, error) {
	if a.kind == KindInt && b.kind == KindInt {
		r, err := a.i.Mod(b.i)
		if err != nil {
			return None, err
		}
		return Int(r), nil
	}
	return None, nil
}

// Neg implements unary '-'.
func Neg(a Value) Value {
	switch a.kind {
	case KindInt:
		return Int(a.i.Neg())
	case KindFloat:
		return Float(-a.f)
	default:
		return None
	}
}

// Less implements '<', matching the reference behavior exactly:
// float comparison wins when either operand is a float and the other
// is numeric-or-bool, then int-int BigInt order, then string-string
// byte order; any other pairing is simply false (which makes the
// derived '<=' true for pairs neither '<' nor '>' can order — the
// reference's own quirk, preserved rather than "fixed").
func Less(a, b Value) bool {
	if a.kind == KindFloat && isNumeric(b) {
		return toFloat64(a) < toFloat64(b)
	}
	if b.kind == KindFloat && isNumeric(a) {
		return toFloat64(a) < toFloat64(b)
	}
	if a.kind == KindInt && b.kind == KindInt {
		return a.i.Less(b.i)
	}
	if a.kind == KindString && b.kind == KindString {
		return a.s < b.s
	}
	return false
}

func Greater(a, b Value) bool { return Less(b, a) }
func LessEq(a, b Value) bool  { return !Greater(a, b) }
func GreaterEq(a, b Value) bool { return !Less(a, b) }

// Equal implements '==': same-kind values compare structurally; a
// mismatched int/float pair coerces to float; any other mismatched
// pair is unequal. Bool is deliberately excluded from the cross-kind
// numeric coercion, matching the reference implementation.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		if (a.kind == KindInt || a.kind == KindFloat) && (b.kind == KindInt || b.kind == KindFloat) {
			return toFloat64(a) == toFloat64(b)
		}
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i.Equal(b.i)
	case KindFloat:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	default:
		return false
	}
}

func NotEqual(a, b Value) bool { return !Equal(a, b) }
