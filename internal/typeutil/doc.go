// Package typeutil provides type and declaration helpers for allocfree.
//
// # Overview
//
// This package resolves the two scope levels the gating policy inspects and
// answers the type questions the capabilities share.
//
// # Scope Resolution
//
// Use [ContainingSymbol] with an inspector stack to find the declaration a
// node belongs to:
//
//	func (b *Buffer) Grow() {
//	    _ = func() {
//	        _ = []int{1} // ContainingSymbol -> (*Buffer).Grow
//	    }
//	}
//
//	var table = []int{1} // ContainingSymbol -> table
//
// Use [DeclaringType] to go one level up, from a method to its receiver:
//
//	DeclaringType(grow)  // Buffer
//	DeclaringType(table) // nil
//
// Receivers are unwrapped, so pointer and generic receivers both resolve to
// the declared type name.
//
// # Type Predicates
//
//	IsInterface(t)      // interface types, type parameters excluded
//	IsPointerShaped(t)  // pointers, maps, chans, funcs, unsafe.Pointer
//	IsString(t)         // string and named string types
package typeutil
