package ignorefile

//allocfree:check
func legacy() []int {
	return []int{2}
}
