// Package directives provides directive parsing for allocfree.
//
// # Overview
//
//	directives/
//	└── scope/   # //allocfree:check and //allocfree:ignore
//
// # Directive Format
//
// Directives live in the doc comment of a declaration:
//
//	//allocfree:<directive> [- reason]
//
// # Check Directive
//
// Opts a function, method, package-level variable or type into analysis.
// On a type it covers every method declared on that type:
//
//	//allocfree:check
//	type RingBuffer struct{ ... }
//
//	func (r *RingBuffer) Push(v int) {
//	    _ = []int{v} // reported
//	}
//
//	//allocfree:check
//	func hot() { ... }
//
// # Ignore Directive
//
// Exempts a single function, method or package-level variable, even when
// its receiver type is opted in. Ignore always wins over check:
//
//	//allocfree:ignore - runs once at startup
//	func (r *RingBuffer) Reset() { ... }
//
// Only the declaration itself and its receiver type are consulted. A
// directive on the package clause or on an unrelated enclosing declaration
// has no effect.
//
// See [scope] package for details.
package directives
