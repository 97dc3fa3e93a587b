// Package policy implements the gating predicates consulted before dispatch.
package policy

import (
	"go/types"

	"github.com/mpyw/allocfree/internal/directives/scope"
	"github.com/mpyw/allocfree/internal/typeutil"
)

// Level resolves the object consulted at one scope level.
// It returns nil when the level does not exist for the symbol.
type Level func(sym types.Object) types.Object

// Self is the containing symbol itself.
func Self(sym types.Object) types.Object {
	return sym
}

// DeclaringType is the receiver type of a method symbol.
func DeclaringType(sym types.Object) types.Object {
	if tn := typeutil.DeclaringType(sym); tn != nil {
		return tn
	}

	return nil
}

// OptInLevels are the levels searched for //allocfree:check, in order.
// Resolution deliberately stops at the declaring type.
var OptInLevels = []Level{Self, DeclaringType}

// FileMatcher reports whether a file is excluded from analysis.
type FileMatcher interface {
	IsIgnored(path string) (bool, error)
}

// Gate combines the ignore list with the scope directives of one pass.
type Gate struct {
	files  FileMatcher
	scopes *scope.Map
	levels []Level
}

// New returns a Gate over files and scopes using OptInLevels.
func New(files FileMatcher, scopes *scope.Map) *Gate {
	return &Gate{
		files:  files,
		scopes: scopes,
		levels: OptInLevels,
	}
}

// IsIgnoredFile reports whether path is excluded.
func (g *Gate) IsIgnoredFile(path string) (bool, error) {
	if g.files == nil {
		return false, nil
	}

	return g.files.IsIgnored(path)
}

// IsOptedOut reports whether sym itself carries //allocfree:ignore.
func (g *Gate) IsOptedOut(sym types.Object) (bool, error) {
	return g.scopes.HasIgnore(sym), nil
}

// OptOutReason returns the text following //allocfree:ignore on sym, if any.
func (g *Gate) OptOutReason(sym types.Object) string {
	d, ok := g.scopes.Lookup(sym, scope.Ignore)
	if !ok {
		return ""
	}

	return d.Reason
}

// IsOptedIn reports whether sym or its declaring type carries //allocfree:check.
func (g *Gate) IsOptedIn(sym types.Object) (bool, error) {
	if sym == nil {
		return false, nil
	}

	for _, level := range g.levels {
		if obj := level(sym); obj != nil && g.scopes.HasCheck(obj) {
			return true, nil
		}
	}

	return false, nil
}
