// Package concat covers string concatenation.
package concat

const greeting = "hello, " + "world"

type Name string

//allocfree:check
func greet(name string) string {
	s := "hello, " + name + "!" // want `string concatenation allocates`
	s += "?"                    // want `string concatenation allocates`
	return s
}

//allocfree:check
func constant() string {
	return greeting + "!"
}

//allocfree:check
func named(n Name) Name {
	n += "-suffix" // want `string concatenation allocates`
	return n
}

//allocfree:check
func sum(a, b int) int {
	a += b
	return a + b
}
