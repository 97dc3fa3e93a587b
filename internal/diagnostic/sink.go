package diagnostic

import "sync"

// Sink receives diagnostics. Implementations must be safe for concurrent use.
type Sink interface {
	Report(d Diagnostic)
}

// Collector is an append-only Sink safe for concurrent writers.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Items returns a copy of the collected diagnostics in report order.
func (c *Collector) Items() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)

	return out
}

// Dedup removes structural duplicates, keeping the first occurrence of each
// diagnostic in its original position.
func Dedup(items []Diagnostic) []Diagnostic {
	seen := make(map[Diagnostic]struct{}, len(items))
	out := make([]Diagnostic, 0, len(items))

	for _, d := range items {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}

	return out
}
