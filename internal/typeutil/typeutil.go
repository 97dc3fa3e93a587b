package typeutil

import (
	"go/ast"
	"go/types"
)

// unwrapPointer returns the element type if t is a pointer, otherwise returns t.
func unwrapPointer(t types.Type) types.Type {
	if ptr, ok := t.(*types.Pointer); ok {
		return ptr.Elem()
	}

	return t
}

// DeclaringType returns the named type obj is a method of.
// It handles pointer and generic receivers. Returns nil for anything that is
// not a method with a named receiver.
func DeclaringType(obj types.Object) *types.TypeName {
	fn, ok := obj.(*types.Func)
	if !ok {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil
	}

	named, ok := types.Unalias(unwrapPointer(sig.Recv().Type())).(*types.Named)
	if !ok {
		return nil
	}

	return named.Origin().Obj()
}

// ContainingSymbol returns the declaration immediately enclosing the last node
// of stack: the innermost *ast.FuncDecl, or the package-level variable whose
// initializer holds the node. Function literals and local var statements are
// not declarations.
func ContainingSymbol(info *types.Info, stack []ast.Node) types.Object {
	if info == nil {
		return nil
	}

	for i := len(stack) - 1; i >= 0; i-- {
		switch n := stack[i].(type) {
		case *ast.FuncDecl:
			return info.Defs[n.Name]
		case *ast.ValueSpec:
			if !isPackageLevel(stack, i) {
				continue
			}
			if len(n.Names) == 0 {
				return nil
			}
			var target ast.Node
			if i+1 < len(stack) {
				target = stack[i+1]
			}
			return info.Defs[valueSpecName(n, target)]
		}
	}

	return nil
}

// isPackageLevel reports whether stack[i] sits directly in a top-level
// GenDecl. Specs inside a function body belong to the enclosing function.
func isPackageLevel(stack []ast.Node, i int) bool {
	if i < 2 {
		return false
	}
	if _, ok := stack[i-1].(*ast.GenDecl); !ok {
		return false
	}
	_, ok := stack[i-2].(*ast.File)

	return ok
}

// valueSpecName picks the name whose initializer is child.
// Falls back to the first name for multi-value initializers.
func valueSpecName(spec *ast.ValueSpec, child ast.Node) *ast.Ident {
	if child != nil && len(spec.Values) == len(spec.Names) {
		for i, v := range spec.Values {
			if v == child {
				return spec.Names[i]
			}
		}
	}

	return spec.Names[0]
}

// IsPointerShaped reports whether a value of type t fits in an interface
// word without a heap copy.
func IsPointerShaped(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Pointer, *types.Map, *types.Chan, *types.Signature:
		return true
	case *types.Basic:
		return u.Kind() == types.UnsafePointer || u.Kind() == types.UntypedNil
	}

	return false
}

// IsInterface reports whether t is an interface type, type parameters excluded.
func IsInterface(t types.Type) bool {
	if t == nil {
		return false
	}
	if _, ok := t.(*types.TypeParam); ok {
		return false
	}

	return types.IsInterface(t)
}

// IsString reports whether t's underlying type is a string.
func IsString(t types.Type) bool {
	if t == nil {
		return false
	}

	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Info()&types.IsString != 0
}
