// Package boxing reports concrete values converted to interfaces, which
// copies them to the heap.
package boxing

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/category"
	"github.com/mpyw/allocfree/internal/diagnostic"
	"github.com/mpyw/allocfree/internal/typeutil"
)

// Name is the capability name, also used as its enable flag.
const Name = "boxing"

// Descriptor is the only descriptor emitted by this capability.
var Descriptor = diagnostic.Descriptor{
	ID:              "AF004",
	Title:           "interface boxing",
	DefaultSeverity: diagnostic.SevWarning,
}

// Capability detects implicit and explicit interface conversions.
type Capability struct{}

// New returns the capability.
func New() *Capability {
	return &Capability{}
}

func (*Capability) Name() string { return Name }

func (*Capability) Interests() []category.Category {
	return []category.Category{category.Call, category.Assign}
}

func (*Capability) Descriptors() []diagnostic.Descriptor {
	return []diagnostic.Descriptor{Descriptor}
}

func (c *Capability) Analyze(nctx *capability.NodeContext) ([]diagnostic.Diagnostic, error) {
	if nctx.Info == nil {
		return nil, nil
	}

	switch n := nctx.Node.(type) {
	case *ast.CallExpr:
		return c.call(nctx, n), nil
	case *ast.AssignStmt:
		return c.assign(nctx, n), nil
	}

	return nil, nil
}

func (*Capability) call(nctx *capability.NodeContext, call *ast.CallExpr) []diagnostic.Diagnostic {
	fun, ok := nctx.Info.Types[call.Fun]
	if !ok {
		return nil
	}

	// Conversion: any(x), io.Reader(buf).
	if fun.IsType() {
		if len(call.Args) == 1 && typeutil.IsInterface(fun.Type) {
			return boxed(nctx, call.Args[0])
		}
		return nil
	}

	if fun.IsBuiltin() {
		return nil
	}

	sig, ok := fun.Type.Underlying().(*types.Signature)
	if !ok {
		return nil
	}

	var out []diagnostic.Diagnostic
	for i, arg := range call.Args {
		param := paramType(sig, i, call.Ellipsis.IsValid())
		if typeutil.IsInterface(param) {
			out = append(out, boxed(nctx, arg)...)
		}
	}

	return out
}

func (*Capability) assign(nctx *capability.NodeContext, stmt *ast.AssignStmt) []diagnostic.Diagnostic {
	if stmt.Tok != token.ASSIGN || len(stmt.Lhs) != len(stmt.Rhs) {
		return nil
	}

	var out []diagnostic.Diagnostic
	for i, lhs := range stmt.Lhs {
		if typeutil.IsInterface(nctx.TypeOf(lhs)) {
			out = append(out, boxed(nctx, stmt.Rhs[i])...)
		}
	}

	return out
}

// paramType returns the type argument i is assigned to.
func paramType(sig *types.Signature, i int, spread bool) types.Type {
	params := sig.Params()
	n := params.Len()
	if n == 0 {
		return nil
	}

	if sig.Variadic() && i >= n-1 {
		last := params.At(n - 1).Type()
		if spread {
			return last
		}
		if s, ok := last.Underlying().(*types.Slice); ok {
			return s.Elem()
		}
		return nil
	}
	if i >= n {
		return nil
	}

	return params.At(i).Type()
}

func boxed(nctx *capability.NodeContext, arg ast.Expr) []diagnostic.Diagnostic {
	tv, ok := nctx.Info.Types[arg]
	if !ok || tv.Value != nil || tv.IsNil() || tv.Type == nil {
		return nil
	}

	t := tv.Type
	switch t.(type) {
	case *types.TypeParam, *types.Tuple:
		return nil
	}
	if typeutil.IsInterface(t) || typeutil.IsPointerShaped(t) || isZeroSized(t) {
		return nil
	}

	return []diagnostic.Diagnostic{
		diagnostic.Newf(Descriptor, arg.Pos(), arg.End(),
			"value of type %s is boxed into an interface", types.TypeString(t, types.RelativeTo(nctx.Pkg))),
	}
}

func isZeroSized(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			if !isZeroSized(u.Field(i).Type()) {
				return false
			}
		}
		return true
	case *types.Array:
		return u.Len() == 0 || isZeroSized(u.Elem())
	}

	return false
}
