package parser

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"monty/interpreter/pkg/ast"
)

var augmentedOps = map[string]string{
	"+=":  "+",
	"-=":  "-",
	"*=":  "*",
	"/=":  "/",
	"//=": "//",
	"%=":  "%",
}

func decodeStatement(node *sitter.Node, source []byte) (ast.Statement, error) {
	switch node.Kind() {
	case "expression_statement":
		return decodeExpressionStatement(node, source)
	case "if_statement":
		return decodeIfStatement(node, source)
	case "while_statement":
		return decodeWhileStatement(node, source)
	case "function_definition":
		return decodeFunctionDefinition(node, source)
	case "return_statement":
		return decodeReturnStatement(node, source)
	case "break_statement":
		return &ast.BreakStmt{}, nil
	case "continue_statement":
		return &ast.ContinueStmt{}, nil
	default:
		return nil, &UnsupportedNodeError{Kind: node.Kind()}
	}
}

// decodeExpressionStatement handles three shapes: a bare expression, a
// (possibly chained) assignment, and an augmented assignment — the
// grammar folds all three under expression_statement.
func decodeExpressionStatement(node *sitter.Node, source []byte) (ast.Statement, error) {
	inner := firstNamedChild(node)
	if inner == nil {
		return &ast.ExprStmt{Expr: &ast.NoneLiteral{}}, nil
	}
	switch inner.Kind() {
	case "assignment":
		return decodeAssignmentChain(inner, source)
	case "augmented_assignment":
		return decodeAugAssignment(inner, source)
	default:
		expr, err := decodeExpression(inner, source)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr}, nil
	}
}

// decodeAssignmentChain flattens `a = b = ... = expr` (represented by
// the grammar as nested assignment nodes on the right-hand side) into
// a flat target list plus the single rightmost value expression,
// matching spec.md's Assignment node shape.
func decodeAssignmentChain(node *sitter.Node, source []byte) (*ast.Assignment, error) {
	var targets []string
	cur := node
	for {
		left := cur.ChildByFieldName("left")
		if left == nil || left.Kind() != "identifier" {
			return nil, &UnsupportedNodeError{Kind: "assignment target: " + left.Kind()}
		}
		targets = append(targets, sliceContent(left, source))

		right := cur.ChildByFieldName("right")
		if right == nil {
			return nil, &UnsupportedNodeError{Kind: "assignment missing right-hand side"}
		}
		if right.Kind() == "assignment" {
			cur = right
			continue
		}
		value, err := decodeExpression(right, source)
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Targets: targets, Value: value}, nil
	}
}

func decodeAugAssignment(node *sitter.Node, source []byte) (*ast.AugAssignment, error) {
	left := node.ChildByFieldName("left")
	if left == nil || left.Kind() != "identifier" {
		return nil, &UnsupportedNodeError{Kind: "augmented assignment target"}
	}
	opNode := node.ChildByFieldName("operator")
	op, ok := augmentedOps[sliceContent(opNode, source)]
	if !ok {
		return nil, &UnsupportedNodeError{Kind: "augmented assignment operator"}
	}
	right := node.ChildByFieldName("right")
	value, err := decodeExpression(right, source)
	if err != nil {
		return nil, err
	}
	return &ast.AugAssignment{Target: sliceContent(left, source), Op: op, Value: value}, nil
}

func decodeReturnStatement(node *sitter.Node, source []byte) (*ast.ReturnStmt, error) {
	child := firstNamedChild(node)
	if child == nil {
		return &ast.ReturnStmt{}, nil
	}
	value, err := decodeExpression(child, source)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Value: value}, nil
}

func decodeIfStatement(node *sitter.Node, source []byte) (*ast.IfStmt, error) {
	stmt := &ast.IfStmt{}

	test, err := decodeExpression(node.ChildByFieldName("condition"), source)
	if err != nil {
		return nil, err
	}
	body, err := decodeBlock(node.ChildByFieldName("consequence"), source)
	if err != nil {
		return nil, err
	}
	stmt.Tests = append(stmt.Tests, test)
	stmt.Bodies = append(stmt.Bodies, body)

	for i := uint(0); i < node.NamedChildCount(); i++ {
		clause := node.NamedChild(i)
		switch clause.Kind() {
		case "elif_clause":
			elifTest, err := decodeExpression(clause.ChildByFieldName("condition"), source)
			if err != nil {
				return nil, err
			}
			elifBody, err := decodeBlock(clause.ChildByFieldName("consequence"), source)
			if err != nil {
				return nil, err
			}
			stmt.Tests = append(stmt.Tests, elifTest)
			stmt.Bodies = append(stmt.Bodies, elifBody)
		case "else_clause":
			elseBody, err := decodeBlock(clause.ChildByFieldName("body"), source)
			if err != nil {
				return nil, err
			}
			stmt.Else = elseBody
		}
	}
	return stmt, nil
}

func decodeWhileStatement(node *sitter.Node, source []byte) (*ast.WhileStmt, error) {
	test, err := decodeExpression(node.ChildByFieldName("condition"), source)
	if err != nil {
		return nil, err
	}
	body, err := decodeBlock(node.ChildByFieldName("body"), source)
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Test: test, Body: body}, nil
}

func decodeFunctionDefinition(node *sitter.Node, source []byte) (*ast.FuncDef, error) {
	nameNode := node.ChildByFieldName("name")
	params, err := decodeParameters(node.ChildByFieldName("parameters"), source)
	if err != nil {
		return nil, err
	}
	body, err := decodeBlock(node.ChildByFieldName("body"), source)
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{Name: sliceContent(nameNode, source), Params: params, Body: body}, nil
}

func decodeParameters(node *sitter.Node, source []byte) ([]ast.Param, error) {
	if node == nil {
		return nil, nil
	}
	var params []ast.Param
	for i := uint(0); i < node.NamedChildCount(); i++ {
		p := node.NamedChild(i)
		switch p.Kind() {
		case "identifier":
			params = append(params, ast.Param{Name: sliceContent(p, source)})
		case "default_parameter":
			nameNode := p.ChildByFieldName("name")
			valueNode := p.ChildByFieldName("value")
			defaultExpr, err := decodeExpression(valueNode, source)
			if err != nil {
				return nil, err
			}
			params = append(params, ast.Param{Name: sliceContent(nameNode, source), Default: defaultExpr})
		default:
			return nil, &UnsupportedNodeError{Kind: "parameter: " + p.Kind()}
		}
	}
	return params, nil
}

func decodeBlock(node *sitter.Node, source []byte) ([]ast.Statement, error) {
	if node == nil {
		return nil, &UnsupportedNodeError{Kind: "missing suite"}
	}
	var body []ast.Statement
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if isIgnorable(child) {
			continue
		}
		stmt, err := decodeStatement(child, source)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}

func firstNamedChild(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child != nil {
			return child
		}
	}
	return nil
}
