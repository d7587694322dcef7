// Package parser turns Python source text into Monty's AST by driving
// an external tree-sitter parse and decoding the resulting concrete
// syntax tree, the same external-parser boundary the teacher's own
// module parser establishes for Able source.
package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	treesitterpython "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"monty/interpreter/pkg/ast"
)

// UnsupportedNodeError reports a concrete syntax tree production this
// language subset does not recognize (e.g. classes, imports,
// decorators, comprehensions): anything outside the grammar productions
// named in the external-interfaces section of the spec.
type UnsupportedNodeError struct {
	Kind string
}

func (e *UnsupportedNodeError) Error() string {
	return fmt.Sprintf("parser: unsupported syntax: %s", e.Kind)
}

// Parser wraps a tree-sitter parser configured with the Python grammar.
type Parser struct {
	inner *sitter.Parser
}

// New constructs a Parser with the Python language loaded.
func New() (*Parser, error) {
	lang := sitter.NewLanguage(treesitterpython.Language())
	if lang == nil {
		return nil, fmt.Errorf("parser: python language not available")
	}
	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	return &Parser{inner: p}, nil
}

// Close releases the underlying tree-sitter parser.
func (p *Parser) Close() {
	if p == nil || p.inner == nil {
		return
	}
	p.inner.Close()
}

// ParseModule parses source into the module's top-level AST. A syntax
// error in the source, or any production outside this language
// subset's grammar, is reported rather than silently dropped.
func (p *Parser) ParseModule(source []byte) (*ast.Module, error) {
	if p == nil || p.inner == nil {
		return nil, fmt.Errorf("parser: nil parser")
	}
	tree := p.inner.Parse(source, nil)
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.Kind() != "module" {
		return nil, fmt.Errorf("parser: unexpected root node")
	}
	if root.HasError() {
		return nil, fmt.Errorf("parser: syntax error in source")
	}

	body := make([]ast.Statement, 0, root.NamedChildCount())
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		if child == nil || isIgnorable(child) {
			continue
		}
		stmt, err := decodeStatement(child, source)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return &ast.Module{Body: body}, nil
}

func isIgnorable(node *sitter.Node) bool {
	switch node.Kind() {
	case "comment", "\n", ";":
		return true
	default:
		return false
	}
}

func sliceContent(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start := int(node.StartByte())
	end := int(node.EndByte())
	if start < 0 || end < start || end > len(source) {
		return ""
	}
	return string(source[start:end])
}
