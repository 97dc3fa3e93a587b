package ordering

//allocfree:check
type Ring struct {
	buf []byte
}

func (r *Ring) Reset() {
	r.buf = []byte{} // want `explicit allocation of \[\]byte`
}
