package value

import (
	"testing"

	"monty/interpreter/pkg/bigint"
)

func i(n int64) Value { return Int(bigint.FromInt64(n)) }

func TestDisplay(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{None, "None"},
		{Bool(true), "True"},
		{Bool(false), "False"},
		{i(42), "42"},
		{Int(bigint.FromString("-7")), "-7"},
		{Float(3.5), "3.500000"},
		{String("hello"), "hello"},
	}
	for _, c := range cases {
		if got := c.v.Display(); got != c.want {
			t.Errorf("Display() = %q, want %q", got, c.want)
		}
	}
}

func TestToBool(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{None, false},
		{Bool(false), false},
		{i(0), false},
		{i(1), true},
		{Float(0.0), false},
		{Float(0.5), true},
		{String(""), false},
		{String("x"), true},
	}
	for _, c := range cases {
		if got := c.v.ToBool(); got != c.want {
			t.Errorf("%v.ToBool() = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestToIntCoercion(t *testing.T) {
	if got := String("3.9").ToInt().AsInt().String(); got != "3" {
		t.Errorf("string float truncation: got %s, want 3", got)
	}
	if got := String("  42  ").ToInt().AsInt().String(); got != "42" {
		t.Errorf("trimmed int parse: got %s, want 42", got)
	}
	if got := String("not a number").ToInt().AsInt().String(); got != "0" {
		t.Errorf("parse failure should yield 0, got %s", got)
	}
	if got := Float(-3.9).ToInt().AsInt().String(); got != "-3" {
		t.Errorf("truncate toward zero: got %s, want -3", got)
	}
	if got := Bool(true).ToInt().AsInt().String(); got != "1" {
		t.Errorf("bool true -> 1, got %s", got)
	}
}

func TestStringConcatenationCoercesEitherSide(t *testing.T) {
	got := Add(String("x="), i(5)).Display()
	if got != "x=5" {
		t.Errorf("Add(string, int) = %q, want %q", got, "x=5")
	}
}

func TestArithmeticTypeMismatchYieldsNone(t *testing.T) {
	if got := Sub(String("a"), String("b")); got.Kind() != KindNone {
		t.Errorf("string - string should be None, got %v", got)
	}
}

func TestStringRepetitionLength(t *testing.T) {
	for _, n := range []int64{0, 1, 3, -2} {
		got := Mul(String("ab"), i(n))
		want := 2 * max0(int(n))
		if len(got.AsString()) != want {
			t.Errorf("len(%q * %d) = %d, want %d", "ab", n, len(got.AsString()), want)
		}
	}
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func TestFloorDivAndModSignConvention(t *testing.T) {
	q, err := FloorDiv(i(-7), i(2))
	if err != nil {
		t.Fatal(err)
	}
	if q.AsInt().String() != "-4" {
		t.Errorf("-7 // 2 = %s, want -4", q.AsInt().String())
	}
	r, err := Mod(i(-7), i(2))
	if err != nil {
		t.Fatal(err)
	}
	if r.AsInt().String() != "1" {
		t.Errorf("-7 %% 2 = %s, want 1", r.AsInt().String())
	}
}

func TestModMixedTypeIsNone(t *testing.T) {
	got, err := Mod(Float(1.5), i(2))
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind() != KindNone {
		t.Errorf("float %% int should be None, got %v", got)
	}
}

func TestEqualityCoercion(t *testing.T) {
	if !Equal(i(2), Float(2.0)) {
		t.Error("int 2 should equal float 2.0")
	}
	if Equal(Bool(true), i(1)) {
		t.Error("bool and int should never compare equal, per reference behavior")
	}
	if Equal(i(1), String("1")) {
		t.Error("int and string should never compare equal")
	}
}

func TestChainableComparisonHelpers(t *testing.T) {
	if !Less(i(1), i(2)) {
		t.Error("1 < 2 should be true")
	}
	if Less(Float(1.5), Bool(true)) != Less(Float(1.5), i(1)) {
		t.Error("float compared against bool should behave like float compared against the bool's int value")
	}
	if !Less(String("a"), String("b")) {
		t.Error(`"a" < "b" should be true`)
	}
}
