// Package optout covers //allocfree:ignore on opted-in code.
package optout

//allocfree:check
type Cache struct {
	m map[string]int
}

// Init runs once at startup.
//
//allocfree:ignore - warmup only
func (c *Cache) Init() {
	c.m = map[string]int{}
}

func (c *Cache) Put(k string, v int) {
	c.m[k] = v
}

func (c *Cache) Keys() []string {
	return make([]string, 0, len(c.m)) // want `explicit allocation of \[\]string`
}

// Ignore wins over check on the same declaration.
//
//allocfree:check
//allocfree:ignore
func both() []int {
	return []int{1}
}

//allocfree:ignore
func onlyIgnored() []int {
	return []int{2}
}
