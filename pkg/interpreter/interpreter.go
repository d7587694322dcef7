// Package interpreter walks the parse tree produced by pkg/parser and
// evaluates it against a pkg/runtime scope stack and function table,
// per the evaluator design in the language specification's component
// design and evaluator sections.
package interpreter

import (
	"fmt"
	"io"

	"monty/interpreter/pkg/ast"
	"monty/interpreter/pkg/bigint"
	"monty/interpreter/pkg/runtime"
	"monty/interpreter/pkg/value"
)

// Interpreter holds the evaluator's mutable state for one run: the
// scope stack, the user function table, and the stream print writes to.
type Interpreter struct {
	scopes *runtime.ScopeStack
	funcs  *runtime.FunctionTable
	out    io.Writer
}

// New returns an interpreter with a fresh global scope, writing print
// output to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		scopes: runtime.NewScopeStack(),
		funcs:  runtime.NewFunctionTable(),
		out:    out,
	}
}

// Run evaluates every top-level statement of mod in source order over
// the persistent global scope. An uncaught break/continue/return
// signal, or an unrecoverable runtime error (integer division by
// zero), is returned to the caller rather than silently dropped.
//
// It also returns the value of the trailing top-level expression
// statement, if the module ends with one, and whether such a trailing
// value exists at all — `monty.yml`'s echo_result convenience (SPEC_FULL.md
// §10.2) reads this to decide whether to print it.
func (interp *Interpreter) Run(mod *ast.Module) (value.Value, bool, error) {
	var last value.Value
	var hasLast bool
	for _, stmt := range mod.Body {
		v, err := interp.evalStmt(stmt)
		if err != nil {
			return value.None, false, unwrapTopLevel(err)
		}
		if _, ok := stmt.(*ast.ExprStmt); ok {
			last, hasLast = v, true
		} else {
			hasLast = false
		}
	}
	return last, hasLast, nil
}

// unwrapTopLevel turns a control-flow signal that escaped every
// loop/function body into a plain error, per spec.md §5's "program
// error" policy for signals that reach the outermost handler.
func unwrapTopLevel(err error) error {
	switch err.(type) {
	case breakSignal:
		return fmt.Errorf("'break' outside loop")
	case continueSignal:
		return fmt.Errorf("'continue' outside loop")
	case returnSignal:
		return fmt.Errorf("'return' outside function")
	default:
		return err
	}
}

// builtinNames lists the names resolved against the built-in table
// before the user function table, per spec.md §4.4.
var builtinNames = map[string]bool{
	"print": true,
	"int":   true,
	"float": true,
	"str":   true,
	"bool":  true,
}

func (interp *Interpreter) callBuiltin(name string, args []value.Value) (value.Value, error) {
	switch name {
	case "print":
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.Display()
		}
		for i, p := range parts {
			if i > 0 {
				fmt.Fprint(interp.out, " ")
			}
			fmt.Fprint(interp.out, p)
		}
		fmt.Fprint(interp.out, "\n")
		return value.None, nil
	case "int":
		if len(args) == 0 {
			return value.Int(bigint.Zero), nil
		}
		return args[0].ToInt(), nil
	case "float":
		if len(args) == 0 {
			return value.Float(0), nil
		}
		return args[0].ToFloat(), nil
	case "str":
		if len(args) == 0 {
			return value.String(""), nil
		}
		return args[0].ToStr(), nil
	case "bool":
		if len(args) == 0 {
			return value.Bool(false), nil
		}
		return value.Bool(args[0].ToBool()), nil
	default:
		return value.None, fmt.Errorf("unknown builtin %q", name)
	}
}
