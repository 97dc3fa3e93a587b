// Package concat reports non-constant string concatenation.
package concat

import (
	"go/ast"
	"go/token"

	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/category"
	"github.com/mpyw/allocfree/internal/diagnostic"
	"github.com/mpyw/allocfree/internal/typeutil"
)

// Name is the capability name, also used as its enable flag.
const Name = "concat"

// Descriptor is the only descriptor emitted by this capability.
var Descriptor = diagnostic.Descriptor{
	ID:              "AF003",
	Title:           "string concatenation",
	DefaultSeverity: diagnostic.SevWarning,
}

const message = "string concatenation allocates"

// Capability detects string concatenation.
type Capability struct{}

// New returns the capability.
func New() *Capability {
	return &Capability{}
}

func (*Capability) Name() string { return Name }

func (*Capability) Interests() []category.Category {
	return []category.Category{category.Binary, category.Assign}
}

func (*Capability) Descriptors() []diagnostic.Descriptor {
	return []diagnostic.Descriptor{Descriptor}
}

func (*Capability) Analyze(nctx *capability.NodeContext) ([]diagnostic.Diagnostic, error) {
	if nctx.Info == nil {
		return nil, nil
	}

	switch n := nctx.Node.(type) {
	case *ast.BinaryExpr:
		if !isStringAdd(nctx, n) {
			return nil, nil
		}
		// a + b + c is a single runtime concatenation: report the outermost.
		if parent, ok := nctx.Parent().(*ast.BinaryExpr); ok && isStringAdd(nctx, parent) {
			return nil, nil
		}
		return []diagnostic.Diagnostic{diagnostic.New(Descriptor, n.Pos(), n.End(), message)}, nil

	case *ast.AssignStmt:
		if n.Tok != token.ADD_ASSIGN || len(n.Lhs) != 1 || !typeutil.IsString(nctx.TypeOf(n.Lhs[0])) {
			return nil, nil
		}
		return []diagnostic.Diagnostic{diagnostic.New(Descriptor, n.Pos(), n.End(), message)}, nil
	}

	return nil, nil
}

func isStringAdd(nctx *capability.NodeContext, e *ast.BinaryExpr) bool {
	if e.Op != token.ADD {
		return false
	}

	tv, ok := nctx.Info.Types[e]
	if !ok || tv.Value != nil {
		return false
	}

	return typeutil.IsString(tv.Type)
}
