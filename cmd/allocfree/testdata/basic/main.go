package main

import "fmt"

//allocfree:check
type Ring struct {
	buf []byte
}

func (r *Ring) Reset() {
	r.buf = []byte{}
}

func (r *Ring) Describe() string {
	return fmt.Sprintf("ring of %d", len(r.buf))
}

func main() {
	r := &Ring{}
	r.Reset()
	fmt.Println(r.Describe())
}
