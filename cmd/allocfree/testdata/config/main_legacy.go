package main

import "fmt"

//allocfree:check
func legacy() string {
	return fmt.Sprint("legacy")
}
