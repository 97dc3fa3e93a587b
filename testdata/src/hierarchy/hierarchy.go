// Package hierarchy covers the two resolution levels: the containing
// declaration and the receiver type of a method. Nothing further up counts.
package hierarchy

//allocfree:check
type Outer struct {
	hook func() []int
}

// Function literals belong to the declaration that contains them.
func (o *Outer) Run() []int {
	inner := func() []int {
		return []int{1} // want `explicit allocation of \[\]int`
	}
	return inner()
}

// A plain function returning an opted-in type is not a method of it.
func newOuter() *Outer {
	return &Outer{hook: func() []int { return []int{2} }}
}

// Embedding does not propagate the annotation.
type Wrapper struct {
	Outer
}

func (w *Wrapper) Extra() []int {
	return []int{3}
}

//allocfree:check
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Empty() []T {
	return []T{} // want `explicit allocation of \[\]T`
}

func (s Stack[T]) Copy() Stack[T] {
	return Stack[T]{items: s.items}
}

// Package-level variables are symbols of their own.
//
//allocfree:check
var table = []string{"a", "b"} // want `explicit allocation of \[\]string`

var other = []string{"c"}

// Methods may opt out of an opted-in type individually.
//
//allocfree:ignore
func (s *Stack[T]) Reset() {
	s.items = []T{}
}
