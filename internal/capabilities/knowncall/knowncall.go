// Package knowncall reports calls to functions known to allocate on every
// call, such as fmt.Sprintf.
package knowncall

import (
	"go/ast"

	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/category"
	"github.com/mpyw/allocfree/internal/diagnostic"
	"github.com/mpyw/allocfree/internal/funcspec"
)

// Name is the capability name, also used as its enable flag.
const Name = "knowncall"

// Descriptor is the only descriptor emitted by this capability.
var Descriptor = diagnostic.Descriptor{
	ID:              "AF005",
	Title:           "allocating call",
	DefaultSeverity: diagnostic.SevWarning,
}

// Defaults is the built-in list of allocating functions.
var Defaults = []funcspec.Spec{
	{PkgPath: "fmt", FuncName: "Sprintf"},
	{PkgPath: "fmt", FuncName: "Sprint"},
	{PkgPath: "fmt", FuncName: "Sprintln"},
	{PkgPath: "fmt", FuncName: "Errorf"},
	{PkgPath: "errors", FuncName: "New"},
	{PkgPath: "strings", FuncName: "Join"},
	{PkgPath: "strings", FuncName: "Repeat"},
	{PkgPath: "strings", FuncName: "Split"},
	{PkgPath: "strings", FuncName: "Fields"},
	{PkgPath: "strconv", FuncName: "Itoa"},
	{PkgPath: "strconv", FuncName: "FormatInt"},
	{PkgPath: "bytes", TypeName: "Buffer", FuncName: "String"},
}

// Capability matches calls against a fixed list of specs.
type Capability struct {
	specs []funcspec.Spec
}

// New returns the capability for Defaults plus extra.
func New(extra []funcspec.Spec) *Capability {
	specs := make([]funcspec.Spec, 0, len(Defaults)+len(extra))
	specs = append(specs, Defaults...)
	specs = append(specs, extra...)

	return &Capability{specs: specs}
}

func (*Capability) Name() string { return Name }

func (*Capability) Interests() []category.Category {
	return []category.Category{category.Call}
}

func (*Capability) Descriptors() []diagnostic.Descriptor {
	return []diagnostic.Descriptor{Descriptor}
}

// Specs returns the matched specs.
func (c *Capability) Specs() []funcspec.Spec {
	return append([]funcspec.Spec(nil), c.specs...)
}

func (c *Capability) Analyze(nctx *capability.NodeContext) ([]diagnostic.Diagnostic, error) {
	call, ok := nctx.Node.(*ast.CallExpr)
	if !ok {
		return nil, nil
	}

	spec, ok := funcspec.MatchesAny(c.specs, funcspec.ExtractFunc(nctx.Info, call))
	if !ok {
		return nil, nil
	}

	return []diagnostic.Diagnostic{
		diagnostic.Newf(Descriptor, call.Pos(), call.End(), "call to %s allocates", spec.ShortName()),
	}, nil
}
