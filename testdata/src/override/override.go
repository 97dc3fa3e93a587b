// Package override is analyzed with the configured/allocfree.yaml file, which
// disables boxing, and -boxing=true, which re-enables it.
package override

import "fmt"

//allocfree:check
func hot(a string) string {
	return fmt.Sprint(a) // want `call to fmt.Sprint allocates` `value of type string is boxed into an interface`
}
