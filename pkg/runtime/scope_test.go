package runtime

import (
	"testing"

	"monty/interpreter/pkg/value"
)

func TestLookupMissingYieldsNoneNoError(t *testing.T) {
	s := NewScopeStack()
	v, ok := s.Lookup("nope")
	if ok {
		t.Fatal("expected ok=false for missing name")
	}
	if v.Kind() != value.KindNone {
		t.Fatalf("expected None, got %v", v)
	}
}

func TestAssignAlwaysWritesInnermost(t *testing.T) {
	s := NewScopeStack()
	s.Assign("x", value.String("outer"))
	s.Push()
	s.Assign("x", value.String("inner"))

	got, _ := s.Lookup("x")
	if got.AsString() != "inner" {
		t.Fatalf("lookup should see innermost binding, got %q", got.AsString())
	}

	s.Pop()
	got, _ = s.Lookup("x")
	if got.AsString() != "outer" {
		t.Fatalf("after pop, outer binding should be restored, got %q", got.AsString())
	}
}

func TestScopeIsolationAfterCall(t *testing.T) {
	s := NewScopeStack()
	s.Push()
	s.Assign("local", value.String("x"))
	s.Pop()
	if _, ok := s.Lookup("local"); ok {
		t.Fatal("variable assigned inside a popped scope must not be visible afterward")
	}
}

func TestPopNeverRemovesGlobalScope(t *testing.T) {
	s := NewScopeStack()
	s.Pop()
	s.Pop()
	if s.Depth() != 1 {
		t.Fatalf("global scope must survive extra pops, depth=%d", s.Depth())
	}
}

func TestAssignInsideCallFrameShadowsGlobal(t *testing.T) {
	s := NewScopeStack()
	s.Assign("x", value.String("global"))
	s.Push()
	s.Assign("x", value.String("shadowed"))
	s.Pop()

	got, _ := s.Lookup("x")
	if got.AsString() != "global" {
		t.Fatalf("a write inside a call frame must never leak to the global scope, got %q", got.AsString())
	}
}
