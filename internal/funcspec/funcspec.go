package funcspec

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"strings"
	"unicode"
)

// ErrInvalidSpec is returned for specifications without a package path.
var ErrInvalidSpec = errors.New("invalid function specification")

// Spec holds parsed components of a function specification.
// Format: "pkg/path.Func" or "pkg/path.Type.Method".
type Spec struct {
	PkgPath  string
	TypeName string // empty for package-level functions
	FuncName string
}

// Parse parses a single function specification string into components.
func Parse(s string) (Spec, error) {
	s = strings.TrimSpace(s)

	lastDot := strings.LastIndex(s, ".")
	if lastDot <= 0 || lastDot == len(s)-1 {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidSpec, s)
	}

	spec := Spec{FuncName: s[lastDot+1:]}
	prefix := s[:lastDot]

	// Type names are exported identifiers directly after the last path
	// element, e.g. "strings.Builder" in "strings.Builder.String".
	if secondLastDot := strings.LastIndex(prefix, "."); secondLastDot > strings.LastIndex(prefix, "/") {
		possibleType := prefix[secondLastDot+1:]
		if possibleType != "" && unicode.IsUpper(rune(possibleType[0])) {
			spec.TypeName = possibleType
			spec.PkgPath = prefix[:secondLastDot]

			return spec, nil
		}
	}

	spec.PkgPath = prefix

	return spec, nil
}

// ParseList parses a comma-separated list of specifications.
// Empty elements are skipped.
func ParseList(s string) ([]Spec, error) {
	var specs []Spec

	for part := range strings.SplitSeq(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}

		spec, err := Parse(part)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

// String returns the specification in its parseable form.
func (s Spec) String() string {
	if s.TypeName == "" {
		return s.PkgPath + "." + s.FuncName
	}

	return s.PkgPath + "." + s.TypeName + "." + s.FuncName
}

// ShortName returns the spec with only the last package path element,
// e.g. "fmt.Sprintf" or "pool.Pool.Get".
func (s Spec) ShortName() string {
	pkg := s.PkgPath
	if idx := strings.LastIndex(pkg, "/"); idx >= 0 {
		pkg = pkg[idx+1:]
	}

	return Spec{PkgPath: pkg, TypeName: s.TypeName, FuncName: s.FuncName}.String()
}

// Matches checks if a types.Func matches this specification.
func (s Spec) Matches(fn *types.Func) bool {
	if fn == nil || fn.Name() != s.FuncName {
		return false
	}

	pkg := fn.Pkg()
	if pkg == nil || pkg.Path() != s.PkgPath {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return false
	}

	recv := sig.Recv()
	if s.TypeName == "" {
		return recv == nil
	}
	if recv == nil {
		return false
	}

	recvType := recv.Type()
	if ptr, ok := recvType.(*types.Pointer); ok {
		recvType = ptr.Elem()
	}

	named, ok := types.Unalias(recvType).(*types.Named)
	if !ok {
		return false
	}

	return named.Origin().Obj().Name() == s.TypeName
}

// MatchesAny reports whether fn matches one of specs.
func MatchesAny(specs []Spec, fn *types.Func) (Spec, bool) {
	for _, spec := range specs {
		if spec.Matches(fn) {
			return spec, true
		}
	}

	return Spec{}, false
}

// ExtractFunc extracts the types.Func from a call expression.
// Returns nil if the callee cannot be determined statically.
func ExtractFunc(info *types.Info, call *ast.CallExpr) *types.Func {
	if info == nil {
		return nil
	}

	fun := ast.Unparen(call.Fun)
	if idx, ok := fun.(*ast.IndexExpr); ok {
		fun = idx.X
	}
	if idx, ok := fun.(*ast.IndexListExpr); ok {
		fun = idx.X
	}

	switch fun := fun.(type) {
	case *ast.Ident:
		if f, ok := info.ObjectOf(fun).(*types.Func); ok {
			return f
		}

	case *ast.SelectorExpr:
		if sel := info.Selections[fun]; sel != nil {
			if f, ok := sel.Obj().(*types.Func); ok {
				return f
			}
		} else if f, ok := info.ObjectOf(fun.Sel).(*types.Func); ok {
			return f
		}
	}

	return nil
}
