package parser_test

import (
	"testing"

	"monty/interpreter/pkg/ast"
	"monty/interpreter/pkg/parser"
)

func parseModule(t *testing.T, source string) *ast.Module {
	t.Helper()
	p, err := parser.New()
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	t.Cleanup(p.Close)

	mod, err := p.ParseModule([]byte(source))
	if err != nil {
		t.Fatalf("ParseModule returned error: %v", err)
	}
	return mod
}

func TestParseSimpleAssignmentAndPrint(t *testing.T) {
	mod := parseModule(t, "x = 1\nprint(x)\n")
	if len(mod.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(mod.Body))
	}
	assign, ok := mod.Body[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %T", mod.Body[0])
	}
	if len(assign.Targets) != 1 || assign.Targets[0] != "x" {
		t.Fatalf("unexpected targets: %v", assign.Targets)
	}
	if _, ok := mod.Body[1].(*ast.ExprStmt); !ok {
		t.Fatalf("expected ExprStmt, got %T", mod.Body[1])
	}
}

func TestParseChainedAssignment(t *testing.T) {
	mod := parseModule(t, "a = b = 5\n")
	assign, ok := mod.Body[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected Assignment, got %T", mod.Body[0])
	}
	if len(assign.Targets) != 2 || assign.Targets[0] != "a" || assign.Targets[1] != "b" {
		t.Fatalf("expected targets [a b], got %v", assign.Targets)
	}
	if _, ok := assign.Value.(*ast.IntegerLiteral); !ok {
		t.Fatalf("expected IntegerLiteral value, got %T", assign.Value)
	}
}

func TestParseFunctionDefinitionWithDefault(t *testing.T) {
	mod := parseModule(t, "def f(x, y=3):\n    return x + y\n")
	fn, ok := mod.Body[0].(*ast.FuncDef)
	if !ok {
		t.Fatalf("expected FuncDef, got %T", mod.Body[0])
	}
	if fn.Name != "f" || len(fn.Params) != 2 {
		t.Fatalf("unexpected function shape: %#v", fn)
	}
	if fn.Params[1].Default == nil {
		t.Fatal("expected y to carry a default expression")
	}
	if len(fn.Body) != 1 {
		t.Fatalf("expected single return statement in body, got %d", len(fn.Body))
	}
}

func TestParseWhileLoopWithAugmentedAssignment(t *testing.T) {
	mod := parseModule(t, "n = 5\nwhile n > 0:\n    n -= 1\n")
	loop, ok := mod.Body[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt, got %T", mod.Body[1])
	}
	if len(loop.Body) != 1 {
		t.Fatalf("expected single statement in loop body, got %d", len(loop.Body))
	}
	if _, ok := loop.Body[0].(*ast.AugAssignment); !ok {
		t.Fatalf("expected AugAssignment, got %T", loop.Body[0])
	}
}

func TestParseFormatStringInterpolation(t *testing.T) {
	mod := parseModule(t, `name = "world"
print(f"hello {name}!")
`)
	call := mod.Body[1].(*ast.ExprStmt).Expr.(*ast.Call)
	fstr, ok := call.Args[0].Value.(*ast.FormatString)
	if !ok {
		t.Fatalf("expected FormatString argument, got %T", call.Args[0].Value)
	}
	if len(fstr.Parts) != 3 {
		t.Fatalf("expected 3 parts (text, expr, text), got %d", len(fstr.Parts))
	}
}

func TestParseFormatStringInterpolationWithCommaList(t *testing.T) {
	mod := parseModule(t, `a = 1
b = 2
print(f"{a, b}")
`)
	call := mod.Body[2].(*ast.ExprStmt).Expr.(*ast.Call)
	fstr, ok := call.Args[0].Value.(*ast.FormatString)
	if !ok {
		t.Fatalf("expected FormatString argument, got %T", call.Args[0].Value)
	}
	if len(fstr.Parts) != 1 {
		t.Fatalf("expected a single interpolation part, got %d", len(fstr.Parts))
	}
	if len(fstr.Parts[0].Exprs) != 2 {
		t.Fatalf("expected both comma-separated expressions decoded, got %d", len(fstr.Parts[0].Exprs))
	}
}

func TestParseRejectsUnsupportedSyntax(t *testing.T) {
	p, err := parser.New()
	if err != nil {
		t.Fatalf("parser.New: %v", err)
	}
	t.Cleanup(p.Close)

	_, err = p.ParseModule([]byte("class Foo:\n    pass\n"))
	if err == nil {
		t.Fatal("expected an error for a class definition, which is outside this language subset")
	}
}
