// Package closure reports function literals that capture variables and
// therefore allocate a closure context.
package closure

import (
	"go/ast"
	"go/types"
	"strings"

	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/category"
	"github.com/mpyw/allocfree/internal/diagnostic"
)

// Name is the capability name, also used as its enable flag.
const Name = "closure"

// Descriptor is the only descriptor emitted by this capability.
var Descriptor = diagnostic.Descriptor{
	ID:              "AF002",
	Title:           "closure allocation",
	DefaultSeverity: diagnostic.SevWarning,
}

// Capability detects capturing function literals.
type Capability struct{}

// New returns the capability.
func New() *Capability {
	return &Capability{}
}

func (*Capability) Name() string { return Name }

func (*Capability) Interests() []category.Category {
	return []category.Category{category.FuncLit}
}

func (*Capability) Descriptors() []diagnostic.Descriptor {
	return []diagnostic.Descriptor{Descriptor}
}

func (*Capability) Analyze(nctx *capability.NodeContext) ([]diagnostic.Diagnostic, error) {
	lit, ok := nctx.Node.(*ast.FuncLit)
	if !ok || nctx.Info == nil {
		return nil, nil
	}

	captured := Captures(nctx.Info, lit)
	if len(captured) == 0 {
		return nil, nil
	}

	return []diagnostic.Diagnostic{
		diagnostic.Newf(Descriptor, lit.Pos(), lit.End(),
			"closure captures %s", strings.Join(captured, ", ")),
	}, nil
}

// Captures returns the names of the local variables lit refers to that are
// declared outside of it, in order of first use.
func Captures(info *types.Info, lit *ast.FuncLit) []string {
	var names []string
	seen := make(map[*types.Var]bool)

	ast.Inspect(lit.Body, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return true
		}

		v, ok := info.Uses[id].(*types.Var)
		if !ok || seen[v] || !isCaptured(v, lit) {
			return true
		}
		seen[v] = true
		names = append(names, v.Name())

		return true
	})

	return names
}

func isCaptured(v *types.Var, lit *ast.FuncLit) bool {
	if v.IsField() || v.Pkg() == nil {
		return false
	}
	if v.Parent() == v.Pkg().Scope() {
		return false
	}

	return v.Pos() < lit.Pos() || v.Pos() >= lit.End()
}
