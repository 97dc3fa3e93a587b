package degraded

//allocfree:check
func hot() []int {
	return []int{1} // want `explicit allocation of \[\]int`
}

func cold() []int {
	return []int{2}
}
