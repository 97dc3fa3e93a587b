// Command allocfree is a linter that reports heap allocations in code opted
// in with //allocfree:check.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/mpyw/allocfree"
)

func main() {
	singlechecker.Main(allocfree.Analyzer)
}
