package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"monty/interpreter/pkg/ast"
)

var comparisonOps = map[string]bool{
	"<": true, "<=": true, ">": true, ">=": true, "==": true, "!=": true,
}

var additiveOps = map[string]bool{"+": true, "-": true}
var multiplicativeOps = map[string]bool{"*": true, "/": true, "//": true, "%": true}

func decodeExpression(node *sitter.Node, source []byte) (ast.Expression, error) {
	if node == nil {
		return nil, &UnsupportedNodeError{Kind: "missing expression"}
	}
	switch node.Kind() {
	case "identifier":
		return &ast.Identifier{Name: sliceContent(node, source)}, nil
	case "integer":
		return &ast.IntegerLiteral{Lexeme: sliceContent(node, source)}, nil
	case "float":
		return &ast.FloatLiteral{Lexeme: sliceContent(node, source)}, nil
	case "true":
		return &ast.BoolLiteral{Value: true}, nil
	case "false":
		return &ast.BoolLiteral{Value: false}, nil
	case "none":
		return &ast.NoneLiteral{}, nil
	case "string":
		return decodeStringOrFormatString(node, source)
	case "concatenated_string":
		return decodeConcatenatedString(node, source)
	case "parenthesized_expression":
		inner, err := decodeExpression(firstNamedChild(node), source)
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Inner: inner}, nil
	case "not_operator":
		operand, err := decodeExpression(node.ChildByFieldName("argument"), source)
		if err != nil {
			return nil, err
		}
		return &ast.NotExpr{Operand: operand}, nil
	case "unary_operator":
		operand, err := decodeExpression(node.ChildByFieldName("argument"), source)
		if err != nil {
			return nil, err
		}
		op := sliceContent(node.ChildByFieldName("operator"), source)
		return &ast.UnaryExpr{Op: op, Operand: operand}, nil
	case "binary_operator":
		return decodeBinaryOperator(node, source)
	case "boolean_operator":
		return decodeBooleanOperator(node, source)
	case "comparison_operator":
		return decodeComparisonOperator(node, source)
	case "call":
		return decodeCall(node, source)
	default:
		return nil, &UnsupportedNodeError{Kind: node.Kind()}
	}
}

func decodeBinaryOperator(node *sitter.Node, source []byte) (ast.Expression, error) {
	left, err := decodeExpression(node.ChildByFieldName("left"), source)
	if err != nil {
		return nil, err
	}
	right, err := decodeExpression(node.ChildByFieldName("right"), source)
	if err != nil {
		return nil, err
	}
	op := sliceContent(node.ChildByFieldName("operator"), source)
	if !additiveOps[op] && !multiplicativeOps[op] {
		return nil, &UnsupportedNodeError{Kind: "binary operator " + op}
	}
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil
}

func decodeBooleanOperator(node *sitter.Node, source []byte) (ast.Expression, error) {
	left, err := decodeExpression(node.ChildByFieldName("left"), source)
	if err != nil {
		return nil, err
	}
	right, err := decodeExpression(node.ChildByFieldName("right"), source)
	if err != nil {
		return nil, err
	}
	op := sliceContent(node.ChildByFieldName("operator"), source)
	if op != "and" && op != "or" {
		return nil, &UnsupportedNodeError{Kind: "boolean operator " + op}
	}
	// Flatten a right-leaning chain of the same operator into one
	// BoolOp so the evaluator can short-circuit across the whole
	// chain without recursing back through decodeExpression.
	operands := []ast.Expression{left}
	if chain, ok := right.(*ast.BoolOp); ok && chain.Op == op {
		operands = append(operands, chain.Operands...)
	} else {
		operands = append(operands, right)
	}
	return &ast.BoolOp{Op: op, Operands: operands}, nil
}

// decodeComparisonOperator walks all children of a chained comparison
// node (the grammar represents `a op1 b op2 c` as a flat sequence of
// operand/operator/operand/... children rather than nested binary
// nodes) and reassembles them into Monty's Comparison node.
func decodeComparisonOperator(node *sitter.Node, source []byte) (ast.Expression, error) {
	var operands []ast.Expression
	var ops []string
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil {
			continue
		}
		text := sliceContent(child, source)
		if comparisonOps[text] {
			ops = append(ops, text)
			continue
		}
		if !child.IsNamed() {
			continue
		}
		operand, err := decodeExpression(child, source)
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) < 2 || len(ops) != len(operands)-1 {
		return nil, &UnsupportedNodeError{Kind: "comparison chain"}
	}
	return &ast.Comparison{Operands: operands, Ops: ops}, nil
}

func decodeCall(node *sitter.Node, source []byte) (ast.Expression, error) {
	calleeNode := node.ChildByFieldName("function")
	if calleeNode == nil || calleeNode.Kind() != "identifier" {
		return nil, &UnsupportedNodeError{Kind: "call callee"}
	}
	callee := sliceContent(calleeNode, source)

	argsNode := node.ChildByFieldName("arguments")
	var args []ast.CallArg
	if argsNode != nil {
		for i := uint(0); i < argsNode.NamedChildCount(); i++ {
			argNode := argsNode.NamedChild(i)
			if argNode.Kind() == "keyword_argument" {
				nameNode := argNode.ChildByFieldName("name")
				valueNode := argNode.ChildByFieldName("value")
				value, err := decodeExpression(valueNode, source)
				if err != nil {
					return nil, err
				}
				args = append(args, ast.CallArg{Name: sliceContent(nameNode, source), Value: value})
				continue
			}
			value, err := decodeExpression(argNode, source)
			if err != nil {
				return nil, err
			}
			args = append(args, ast.CallArg{Value: value})
		}
	}
	return &ast.Call{Callee: callee, Args: args}, nil
}

// decodeStringOrFormatString decodes a `string` node. A plain string
// has only string_content/escape_sequence children and decodes to a
// StringLiteral with escapes resolved; one with at least one
// `interpolation` child is an f-string and decodes to a FormatString.
func decodeStringOrFormatString(node *sitter.Node, source []byte) (ast.Expression, error) {
	hasInterpolation := false
	for i := uint(0); i < node.ChildCount(); i++ {
		if node.Child(i).Kind() == "interpolation" {
			hasInterpolation = true
			break
		}
	}
	if !hasInterpolation {
		return &ast.StringLiteral{Value: decodeStringBody(node, source)}, nil
	}

	var parts []ast.FormatStringPart
	var textBuf strings.Builder
	flush := func() {
		if textBuf.Len() > 0 {
			parts = append(parts, ast.FormatStringPart{IsText: true, Text: textBuf.String()})
			textBuf.Reset()
		}
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "string_start", "string_end":
			continue
		case "string_content":
			textBuf.WriteString(decodeEscapes(sliceContent(child, source)))
		case "escape_sequence":
			textBuf.WriteString(decodeEscapes(sliceContent(child, source)))
		case "interpolation":
			flush()
			exprs, err := decodeInterpolationExprs(child, source)
			if err != nil {
				return nil, err
			}
			parts = append(parts, ast.FormatStringPart{Exprs: exprs})
		}
	}
	flush()
	return &ast.FormatString{Parts: parts}, nil
}

// decodeInterpolationExprs decodes the embedded node of an
// `interpolation` (the `{ testlist }` production in spec.md §6). A
// comma-separated body parses as an `expression_list` node with one
// named child per operand; a single expression has no such wrapper.
func decodeInterpolationExprs(node *sitter.Node, source []byte) ([]ast.Expression, error) {
	body := firstNamedChild(node)
	if body == nil {
		return nil, &UnsupportedNodeError{Kind: "empty interpolation"}
	}
	if node.ChildByFieldName("format_specifier") != nil || node.ChildByFieldName("type_conversion") != nil {
		return nil, &UnsupportedNodeError{Kind: "f-string format specifier or conversion"}
	}
	if body.Kind() != "expression_list" {
		expr, err := decodeExpression(body, source)
		if err != nil {
			return nil, err
		}
		return []ast.Expression{expr}, nil
	}
	var exprs []ast.Expression
	for i := uint(0); i < body.NamedChildCount(); i++ {
		expr, err := decodeExpression(body.NamedChild(i), source)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func decodeStringBody(node *sitter.Node, source []byte) string {
	var sb strings.Builder
	for i := uint(0); i < node.ChildCount(); i++ {
		child := node.Child(i)
		switch child.Kind() {
		case "string_content", "escape_sequence":
			sb.WriteString(decodeEscapes(sliceContent(child, source)))
		}
	}
	return sb.String()
}

// decodeConcatenatedString joins adjacent string-literal tokens, per
// spec.md §4.5's "Adjacent string literals concatenate" atom rule.
// Each token's escapes are decoded before concatenation (the order
// matters: decoding after joining could corrupt a literal backslash
// that straddles a token boundary).
func decodeConcatenatedString(node *sitter.Node, source []byte) (ast.Expression, error) {
	var sb strings.Builder
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child.Kind() != "string" {
			return nil, &UnsupportedNodeError{Kind: "concatenated string part: " + child.Kind()}
		}
		sb.WriteString(decodeStringBody(child, source))
	}
	return &ast.StringLiteral{Value: sb.String()}, nil
}

// decodeEscapes resolves the backslash escapes named in spec.md §4.5:
// any escape other than the six listed drops the backslash and keeps
// the following character.
func decodeEscapes(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			sb.WriteByte(s[i])
			continue
		}
		next := s[i+1]
		switch next {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\':
			sb.WriteByte('\\')
		case '\'':
			sb.WriteByte('\'')
		case '"':
			sb.WriteByte('"')
		default:
			sb.WriteByte(next)
		}
		i++
	}
	return sb.String()
}
