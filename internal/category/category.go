// Package category classifies AST nodes into the syntax categories
// capabilities subscribe to.
package category

import "go/ast"

// Category is an opaque tag identifying the shape of a syntax node.
type Category string

// Known categories. Each is bound to exactly one AST node type.
const (
	CompositeLit Category = "composite-literal"
	Call         Category = "call"
	FuncLit      Category = "func-literal"
	Binary       Category = "binary"
	Assign       Category = "assign"
)

// Unknown is returned by Of for nodes outside every known category.
const Unknown Category = ""

// Of returns the category of n, or Unknown.
func Of(n ast.Node) Category {
	switch n.(type) {
	case *ast.CompositeLit:
		return CompositeLit
	case *ast.CallExpr:
		return Call
	case *ast.FuncLit:
		return FuncLit
	case *ast.BinaryExpr:
		return Binary
	case *ast.AssignStmt:
		return Assign
	}

	return Unknown
}

// Prototype returns the typed nil node used as an inspector filter for c.
// The second result is false for categories without an AST binding.
func Prototype(c Category) (ast.Node, bool) {
	switch c {
	case CompositeLit:
		return (*ast.CompositeLit)(nil), true
	case Call:
		return (*ast.CallExpr)(nil), true
	case FuncLit:
		return (*ast.FuncLit)(nil), true
	case Binary:
		return (*ast.BinaryExpr)(nil), true
	case Assign:
		return (*ast.AssignStmt)(nil), true
	}

	return nil, false
}

func (c Category) String() string {
	if c == Unknown {
		return "unknown"
	}

	return string(c)
}
