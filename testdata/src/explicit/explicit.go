// Package explicit covers explicit allocations inside opted-in code.
package explicit

// Buffer opts in every method declared on it.
//
//allocfree:check
type Buffer struct {
	items []int
}

func (b *Buffer) Reset() {
	b.items = []int{} // want `explicit allocation of \[\]int`
}

func (b *Buffer) Grow(n int) {
	b.items = make([]int, 0, n) // want `explicit allocation of \[\]int`
}

func (b *Buffer) Clone() *Buffer {
	return &Buffer{items: b.items} // want `explicit allocation of \*Buffer`
}

func (b *Buffer) Len() int {
	return len(b.items)
}

// Point values stay on the stack.
type Point struct {
	X, Y int
}

//allocfree:check
func origin() Point {
	return Point{}
}

//allocfree:check
func newPoint() *Point {
	return new(Point) // want `explicit allocation of \*Point`
}

//allocfree:check
func newIndex() map[string]int {
	return map[string]int{} // want `explicit allocation of map\[string\]int`
}

//allocfree:check
func fixed() [4]byte {
	return [4]byte{1, 2, 3, 4}
}

// notChecked allocates freely.
func notChecked() []int {
	return []int{1, 2, 3}
}
