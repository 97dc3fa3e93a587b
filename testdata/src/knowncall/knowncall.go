// Package knowncall covers calls to functions known to allocate.
package knowncall

import (
	"bytes"
	"strconv"
	"strings"
)

func render(s string) string {
	return s
}

//allocfree:check
func label(n int) string {
	return strconv.Itoa(n) // want `call to strconv.Itoa allocates`
}

//allocfree:check
func join(parts []string) string {
	return strings.Join(parts, ",") // want `call to strings.Join allocates`
}

//allocfree:check
func trim(s string) string {
	return strings.TrimSpace(s)
}

//allocfree:check
func flush(buf *bytes.Buffer) string {
	return buf.String() // want `call to bytes.Buffer.String allocates`
}

//allocfree:check
func page() string {
	return render("x") // want `call to knowncall.render allocates`
}
