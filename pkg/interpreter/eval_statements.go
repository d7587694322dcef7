package interpreter

import (
	"monty/interpreter/pkg/ast"
	"monty/interpreter/pkg/runtime"
	"monty/interpreter/pkg/value"
)

// evalStmt dispatches a single statement, per spec.md §4.5. It returns
// an error for either a propagating control-flow signal or a fatal
// runtime condition (integer division by zero); all other error
// conditions listed in spec.md §7 resolve silently to `none` or a
// no-op instead of reaching this layer.
func (interp *Interpreter) evalStmt(stmt ast.Statement) (value.Value, error) {
	switch n := stmt.(type) {
	case *ast.ExprStmt:
		return interp.evalExpr(n.Expr)
	case *ast.Assignment:
		return interp.evalAssignment(n)
	case *ast.AugAssignment:
		return interp.evalAugAssignment(n)
	case *ast.BreakStmt:
		return value.None, breakSignal{}
	case *ast.ContinueStmt:
		return value.None, continueSignal{}
	case *ast.ReturnStmt:
		return interp.evalReturn(n)
	case *ast.IfStmt:
		return interp.evalIf(n)
	case *ast.WhileStmt:
		return interp.evalWhile(n)
	case *ast.FuncDef:
		return interp.evalFuncDef(n)
	default:
		return value.None, nil
	}
}

// evalSuite runs a statement list in order, stopping at the first
// error (normal error, or a control-flow signal propagating upward).
// Suites do not push a scope of their own: only function calls do, per
// spec.md §4.3 ("a lexical frame (global or a function call)").
func (interp *Interpreter) evalSuite(body []ast.Statement) error {
	for _, stmt := range body {
		if _, err := interp.evalStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (interp *Interpreter) evalAssignment(n *ast.Assignment) (value.Value, error) {
	rhs, err := interp.evalExpr(n.Value)
	if err != nil {
		return value.None, err
	}
	for _, target := range n.Targets {
		interp.scopes.Assign(target, rhs)
	}
	return rhs, nil
}

// evalAugAssignment reads old via a scope-wide lookup but, per
// spec.md §4.5, always writes the new value to the innermost scope —
// the same "innermost write" policy as a plain assignment.
func (interp *Interpreter) evalAugAssignment(n *ast.AugAssignment) (value.Value, error) {
	old, _ := interp.scopes.Lookup(n.Target)
	rhs, err := interp.evalExpr(n.Value)
	if err != nil {
		return value.None, err
	}
	updated, err := applyBinaryOp(n.Op, old, rhs)
	if err != nil {
		return value.None, err
	}
	interp.scopes.Assign(n.Target, updated)
	return updated, nil
}

func (interp *Interpreter) evalReturn(n *ast.ReturnStmt) (value.Value, error) {
	result := value.None
	if n.Value != nil {
		v, err := interp.evalExpr(n.Value)
		if err != nil {
			return value.None, err
		}
		result = v
	}
	return value.None, returnSignal{value: result}
}

func (interp *Interpreter) evalIf(n *ast.IfStmt) (value.Value, error) {
	for idx, test := range n.Tests {
		cond, err := interp.evalExpr(test)
		if err != nil {
			return value.None, err
		}
		if cond.ToBool() {
			return value.None, interp.evalSuite(n.Bodies[idx])
		}
	}
	if n.Else != nil {
		return value.None, interp.evalSuite(n.Else)
	}
	return value.None, nil
}

func (interp *Interpreter) evalWhile(n *ast.WhileStmt) (value.Value, error) {
	for {
		cond, err := interp.evalExpr(n.Test)
		if err != nil {
			return value.None, err
		}
		if !cond.ToBool() {
			return value.None, nil
		}
		err = interp.evalSuite(n.Body)
		if err == nil {
			continue
		}
		switch err.(type) {
		case breakSignal:
			return value.None, nil
		case continueSignal:
			continue
		default:
			return value.None, err
		}
	}
}

// evalFuncDef records the function's parameter list and defaults,
// evaluated once now in the defining scope (spec.md §4.4, §8 property
// 7). A later definition with the same name shadows the earlier one.
func (interp *Interpreter) evalFuncDef(n *ast.FuncDef) (value.Value, error) {
	fn := &runtime.Function{
		Name:     n.Name,
		Defaults: make(map[string]value.Value),
		Body:     n.Body,
	}
	for _, p := range n.Params {
		fn.Params = append(fn.Params, p.Name)
		if p.Default != nil {
			d, err := interp.evalExpr(p.Default)
			if err != nil {
				return value.None, err
			}
			fn.Defaults[p.Name] = d
		}
	}
	interp.funcs.Define(fn)
	return value.None, nil
}
