// Package explicit reports allocations spelled out in the source:
// slice and map literals, &T{}, new and make.
package explicit

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/category"
	"github.com/mpyw/allocfree/internal/diagnostic"
)

// Name is the capability name, also used as its enable flag.
const Name = "explicit"

// Descriptor is the only descriptor emitted by this capability.
var Descriptor = diagnostic.Descriptor{
	ID:              "AF001",
	Title:           "explicit allocation",
	DefaultSeverity: diagnostic.SevWarning,
}

// Capability detects explicit allocations.
type Capability struct{}

// New returns the capability.
func New() *Capability {
	return &Capability{}
}

func (*Capability) Name() string { return Name }

func (*Capability) Interests() []category.Category {
	return []category.Category{category.CompositeLit, category.Call}
}

func (*Capability) Descriptors() []diagnostic.Descriptor {
	return []diagnostic.Descriptor{Descriptor}
}

func (c *Capability) Analyze(nctx *capability.NodeContext) ([]diagnostic.Diagnostic, error) {
	switch n := nctx.Node.(type) {
	case *ast.CompositeLit:
		return c.compositeLit(nctx, n), nil
	case *ast.CallExpr:
		return c.builtinCall(nctx, n), nil
	}

	return nil, nil
}

func (*Capability) compositeLit(nctx *capability.NodeContext, lit *ast.CompositeLit) []diagnostic.Diagnostic {
	if u, ok := nctx.Parent().(*ast.UnaryExpr); ok && u.Op == token.AND && u.X == lit {
		return report(nctx, u, nctx.TypeOf(u))
	}

	t := nctx.TypeOf(lit)
	if t == nil {
		return nil
	}

	switch t.Underlying().(type) {
	case *types.Slice, *types.Map:
		return report(nctx, lit, t)
	}

	return nil
}

func (*Capability) builtinCall(nctx *capability.NodeContext, call *ast.CallExpr) []diagnostic.Diagnostic {
	id, ok := ast.Unparen(call.Fun).(*ast.Ident)
	if !ok || nctx.Info == nil {
		return nil
	}

	b, ok := nctx.Info.Uses[id].(*types.Builtin)
	if !ok {
		return nil
	}

	switch b.Name() {
	case "new", "make":
		return report(nctx, call, nctx.TypeOf(call))
	}

	return nil
}

func report(nctx *capability.NodeContext, n ast.Node, t types.Type) []diagnostic.Diagnostic {
	if t == nil {
		return nil
	}

	return []diagnostic.Diagnostic{
		diagnostic.Newf(Descriptor, n.Pos(), n.End(),
			"explicit allocation of %s", types.TypeString(t, types.RelativeTo(nctx.Pkg))),
	}
}
