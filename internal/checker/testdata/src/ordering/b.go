package ordering

func (r *Ring) Grow(n int) {
	r.buf = make([]byte, n) // want `explicit allocation of \[\]byte`
}

//allocfree:check
func newRing() *Ring {
	return &Ring{} // want `explicit allocation of \*Ring`
}
