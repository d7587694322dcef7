package runtime

import (
	"testing"

	"monty/interpreter/pkg/bigint"
	"monty/interpreter/pkg/value"
)

func TestDefineAndLookup(t *testing.T) {
	table := NewFunctionTable()
	fn := &Function{Name: "f", Params: []string{"x"}}
	table.Define(fn)

	got, ok := table.Lookup("f")
	if !ok {
		t.Fatal("expected f to be defined")
	}
	if got != fn {
		t.Fatal("Lookup should return the exact registered Function")
	}
}

func TestLookupMissingFunction(t *testing.T) {
	table := NewFunctionTable()
	if _, ok := table.Lookup("nope"); ok {
		t.Fatal("expected ok=false for an undefined function")
	}
}

func TestLaterDefinitionShadowsEarlier(t *testing.T) {
	table := NewFunctionTable()
	table.Define(&Function{Name: "f", Defaults: map[string]value.Value{"y": value.Int(bigint.FromInt64(3))}})
	second := &Function{Name: "f", Params: []string{"a", "b"}}
	table.Define(second)

	got, _ := table.Lookup("f")
	if got != second {
		t.Fatal("a later definition must shadow the earlier one with the same name")
	}
	if len(got.Params) != 2 {
		t.Fatalf("expected the shadowing definition's params, got %v", got.Params)
	}
}
