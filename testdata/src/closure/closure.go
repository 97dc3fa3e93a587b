// Package closure covers capturing function literals.
package closure

var counter int

//allocfree:check
func adder(n int) func(int) int {
	return func(x int) int { // want `closure captures n`
		return x + n
	}
}

//allocfree:check
func pure() func(int) int {
	return func(x int) int {
		return x * 2
	}
}

//allocfree:check
func global() func() int {
	return func() int {
		return counter
	}
}

//allocfree:check
func nested(a, b int) func() int {
	return func() int { // want `closure captures a, b`
		return a + func() int { return b }() // want `closure captures b`
	}
}
