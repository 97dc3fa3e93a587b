package main

import "strconv"

//allocfree:check
func label(n int) string {
	_ = []int{n}
	return strconv.Itoa(n)
}

func main() {
	println(label(1), legacy())
}
