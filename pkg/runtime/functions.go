package runtime

import (
	"monty/interpreter/pkg/ast"
	"monty/interpreter/pkg/value"
)

// Function is a registered user-defined function: name, ordered
// parameters, their already-evaluated default values, and a borrowed
// reference to the body subtree (owned by the parse tree for the
// evaluator's lifetime), per spec.md §3/§4.4.
type Function struct {
	Name     string
	Params   []string
	Defaults map[string]value.Value
	Body     []ast.Statement
}

// FunctionTable maps name to Function. A later definition overwrites
// an earlier one with the same name.
type FunctionTable struct {
	funcs map[string]*Function
}

// NewFunctionTable returns an empty table.
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{funcs: make(map[string]*Function)}
}

// Define registers fn, shadowing any prior definition with the same name.
func (t *FunctionTable) Define(fn *Function) {
	t.funcs[fn.Name] = fn
}

// Lookup returns the function registered under name, if any.
func (t *FunctionTable) Lookup(name string) (*Function, bool) {
	fn, ok := t.funcs[name]
	return fn, ok
}
