// Package locals checks that variables declared inside a function body are
// attributed to the function, not treated as symbols of their own.
package locals

//allocfree:check
func hot() int {
	var s = []int{1, 2} // want `explicit allocation of \[\]int`
	const n = 2
	return len(s) + n
}

//allocfree:check
type Cache struct{}

func (Cache) Fill() int {
	var (
		m = map[string]int{} // want `explicit allocation of map\[string\]int`
		k = "key"
	)
	m[k] = 1
	return len(m)
}

// Local variables do not opt in on their own.
func cold() int {
	//allocfree:check
	var s = []int{3}
	return len(s)
}
