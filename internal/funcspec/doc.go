// Package funcspec parses function specifications and matches them against
// resolved callees.
//
// # Specification Format
//
//	pkg/path.FuncName           # Package-level function
//	pkg/path.TypeName.Method    # Method on type
//
// Examples:
//
//	fmt.Sprintf
//	strings.Builder.String
//	github.com/example/pool.Pool.Get
//
// Lists are comma-separated, as accepted by the -allocating-funcs flag and the
// allocating_funcs config key:
//
//	specs, err := funcspec.ParseList("fmt.Sprintf, strings.Join")
//
// # Matching
//
// Use [ExtractFunc] to resolve the callee of a call and [Spec.Matches] to
// compare it. Pointer receivers and generic receivers are unwrapped:
//
//	if fn := funcspec.ExtractFunc(info, call); fn != nil && spec.Matches(fn) {
//	    // call invokes spec
//	}
package funcspec
