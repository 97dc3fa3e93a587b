// Package disable is analyzed with -boxing=false.
package disable

import "fmt"

//allocfree:check
func format(n int) string {
	return fmt.Sprint(n) // want `call to fmt.Sprint allocates`
}
