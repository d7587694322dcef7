package interpreter

import (
	"fmt"
	"strconv"
	"strings"

	"monty/interpreter/pkg/ast"
	"monty/interpreter/pkg/bigint"
	"monty/interpreter/pkg/value"
)

// evalExpr dispatches a single expression node, per spec.md §4.5's
// atom and operator rules.
func (interp *Interpreter) evalExpr(expr ast.Expression) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.Identifier:
		v, _ := interp.scopes.Lookup(n.Name)
		return v, nil
	case *ast.IntegerLiteral:
		return value.Int(bigint.FromString(n.Lexeme)), nil
	case *ast.FloatLiteral:
		return parseFloatLiteral(n.Lexeme), nil
	case *ast.StringLiteral:
		return value.String(n.Value), nil
	case *ast.BoolLiteral:
		return value.Bool(n.Value), nil
	case *ast.NoneLiteral:
		return value.None, nil
	case *ast.ParenExpr:
		return interp.evalExpr(n.Inner)
	case *ast.FormatString:
		return interp.evalFormatString(n)
	case *ast.UnaryExpr:
		return interp.evalUnary(n)
	case *ast.NotExpr:
		return interp.evalNot(n)
	case *ast.BinaryExpr:
		return interp.evalBinary(n)
	case *ast.BoolOp:
		return interp.evalBoolOp(n)
	case *ast.Comparison:
		return interp.evalComparison(n)
	case *ast.Call:
		return interp.evalCall(n)
	default:
		return value.None, fmt.Errorf("unsupported expression node %s", expr.NodeType())
	}
}

func parseFloatLiteral(lexeme string) value.Value {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return value.Float(0)
	}
	return value.Float(f)
}

func (interp *Interpreter) evalUnary(n *ast.UnaryExpr) (value.Value, error) {
	operand, err := interp.evalExpr(n.Operand)
	if err != nil {
		return value.None, err
	}
	switch n.Op {
	case "-":
		return value.Neg(operand), nil
	case "+":
		return operand, nil
	default:
		return value.None, fmt.Errorf("unsupported unary operator %q", n.Op)
	}
}

func (interp *Interpreter) evalNot(n *ast.NotExpr) (value.Value, error) {
	operand, err := interp.evalExpr(n.Operand)
	if err != nil {
		return value.None, err
	}
	return value.Bool(!operand.ToBool()), nil
}

func (interp *Interpreter) evalBinary(n *ast.BinaryExpr) (value.Value, error) {
	left, err := interp.evalExpr(n.Left)
	if err != nil {
		return value.None, err
	}
	right, err := interp.evalExpr(n.Right)
	if err != nil {
		return value.None, err
	}
	return applyBinaryOp(n.Op, left, right)
}

// applyBinaryOp implements the arith_expr/term operator table of
// spec.md §4.2. It is shared by BinaryExpr and augmented assignment.
func applyBinaryOp(op string, left, right value.Value) (value.Value, error) {
	switch op {
	case "+":
		return value.Add(left, right), nil
	case "-":
		return value.Sub(left, right), nil
	case "*":
		return value.Mul(left, right), nil
	case "/":
		return value.TrueDiv(left, right), nil
	case "//":
		return value.FloorDiv(left, right)
	case "%":
		return value.Mod(left, right)
	default:
		return value.None, fmt.Errorf("unsupported binary operator %q", op)
	}
}

// evalBoolOp implements short-circuit 'or'/'and': evaluate operands
// left to right, stopping at the first operand whose truthiness
// decides the result, otherwise yielding the last operand's value
// unchanged (spec.md §4.5 — value-preserving, not coerced to bool).
func (interp *Interpreter) evalBoolOp(n *ast.BoolOp) (value.Value, error) {
	var last value.Value
	for _, operand := range n.Operands {
		v, err := interp.evalExpr(operand)
		if err != nil {
			return value.None, err
		}
		last = v
		truthy := v.ToBool()
		if n.Op == "or" && truthy {
			return v, nil
		}
		if n.Op == "and" && !truthy {
			return v, nil
		}
	}
	return last, nil
}

// evalComparison implements chained comparison: each operand is
// evaluated exactly once, left to right, and adjacent pairs are
// combined with logical and, short-circuiting on the first false
// (spec.md §4.5, §8 property 5).
func (interp *Interpreter) evalComparison(n *ast.Comparison) (value.Value, error) {
	prev, err := interp.evalExpr(n.Operands[0])
	if err != nil {
		return value.None, err
	}
	for i, op := range n.Ops {
		next, err := interp.evalExpr(n.Operands[i+1])
		if err != nil {
			return value.None, err
		}
		a, b := prev, next
		prev = next
		var ok bool
		switch op {
		case "<":
			ok = value.Less(a, b)
		case "<=":
			ok = value.LessEq(a, b)
		case ">":
			ok = value.Greater(a, b)
		case ">=":
			ok = value.GreaterEq(a, b)
		case "==":
			ok = value.Equal(a, b)
		case "!=":
			ok = value.NotEqual(a, b)
		default:
			return value.None, fmt.Errorf("unsupported comparison operator %q", op)
		}
		if !ok {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

// evalFormatString implements f-string interpolation (spec.md §4.5):
// literal text chunks are emitted verbatim, embedded expression lists
// are evaluated (space-joined when multiple) and inserted via Display.
func (interp *Interpreter) evalFormatString(n *ast.FormatString) (value.Value, error) {
	var sb strings.Builder
	for _, part := range n.Parts {
		if part.IsText {
			sb.WriteString(part.Text)
			continue
		}
		pieces := make([]string, len(part.Exprs))
		for i, e := range part.Exprs {
			v, err := interp.evalExpr(e)
			if err != nil {
				return value.None, err
			}
			pieces[i] = v.Display()
		}
		sb.WriteString(strings.Join(pieces, " "))
	}
	return value.String(sb.String()), nil
}

// evalCall implements the call protocol of spec.md §4.4: built-ins are
// resolved before the user function table.
func (interp *Interpreter) evalCall(n *ast.Call) (value.Value, error) {
	var positional []value.Value
	keyword := make(map[string]value.Value)
	var keywordOrder []string
	for _, arg := range n.Args {
		v, err := interp.evalExpr(arg.Value)
		if err != nil {
			return value.None, err
		}
		if arg.Name == "" {
			positional = append(positional, v)
			continue
		}
		keyword[arg.Name] = v
		keywordOrder = append(keywordOrder, arg.Name)
	}

	if builtinNames[n.Callee] {
		if len(keywordOrder) > 0 {
			return value.None, fmt.Errorf("builtin %q does not accept keyword arguments", n.Callee)
		}
		return interp.callBuiltin(n.Callee, positional)
	}

	fn, ok := interp.funcs.Lookup(n.Callee)
	if !ok {
		return value.None, nil
	}
	return interp.callUserFunction(fn, positional, keyword)
}
