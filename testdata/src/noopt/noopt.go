// Package noopt has no //allocfree:check annotation, so nothing is reported.
package noopt

import "fmt"

type Buffer struct {
	items []int
}

func (b *Buffer) Reset() {
	b.items = []int{}
}

func describe(b *Buffer) string {
	return fmt.Sprintf("%d items", len(b.items))
}

var registry = map[string]*Buffer{}
