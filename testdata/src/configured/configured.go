// Package configured is analyzed with allocfree.yaml from this directory.
package configured

import "fmt"

func expensive() int {
	return 0
}

//allocfree:check
func hot(a, b string) string {
	_ = expensive()   // want `call to configured.expensive allocates`
	_ = fmt.Sprint(a) // want `call to fmt.Sprint allocates`
	return a + b
}
