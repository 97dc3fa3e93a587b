// Package ignorefile covers files excluded by -ignore-files.
package ignorefile

//allocfree:check
func hot() []int {
	return []int{1} // want `explicit allocation of \[\]int`
}
