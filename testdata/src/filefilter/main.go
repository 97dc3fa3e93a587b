// Package filefilter covers generated files, which are always skipped.
package filefilter

//allocfree:check
func handwritten() map[int]bool {
	return map[int]bool{} // want `explicit allocation of map\[int\]bool`
}
