// Package capability defines the contract between the dispatcher and the
// pluggable allocation detectors.
package capability

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/mpyw/allocfree/internal/category"
	"github.com/mpyw/allocfree/internal/diagnostic"
)

// Capability is a unit of analysis logic interested in specific syntax
// categories. Implementations must be immutable after registration and safe
// for concurrent Analyze calls.
type Capability interface {
	// Name is the stable identity of the capability.
	Name() string

	// Interests lists the syntax categories this capability inspects.
	Interests() []category.Category

	// Descriptors lists every descriptor Analyze may emit.
	Descriptors() []diagnostic.Descriptor

	// Analyze inspects nctx.Node and returns the findings for it.
	Analyze(nctx *NodeContext) ([]diagnostic.Diagnostic, error)
}

// NodeContext is the read-only view of one matched node. It is valid for the
// duration of a single dispatch.
type NodeContext struct {
	Fset *token.FileSet
	Info *types.Info
	Pkg  *types.Package

	// Node is the matched node. Stack holds its ancestors, outermost
	// (the *ast.File) first and Node last.
	Node  ast.Node
	Stack []ast.Node

	File     *ast.File
	Filename string

	// Symbol is the immediately containing declaration, nil when none.
	Symbol types.Object

	// DeclaringType is the named type Symbol is a method of, nil otherwise.
	DeclaringType *types.TypeName

	Sink diagnostic.Sink
}

// Category returns the syntax category of the node.
func (c *NodeContext) Category() category.Category {
	return category.Of(c.Node)
}

// Parent returns the direct parent of Node, or nil.
func (c *NodeContext) Parent() ast.Node {
	if len(c.Stack) < 2 {
		return nil
	}

	return c.Stack[len(c.Stack)-2]
}

// TypeOf returns the type of expr, or nil when unknown.
func (c *NodeContext) TypeOf(expr ast.Expr) types.Type {
	if c.Info == nil {
		return nil
	}

	return c.Info.TypeOf(expr)
}
