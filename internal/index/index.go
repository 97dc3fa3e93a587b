// Package index maps syntax categories to the capabilities interested in them.
package index

import (
	"go/ast"

	"github.com/mpyw/allocfree/internal/capability"
	"github.com/mpyw/allocfree/internal/category"
)

// Index is the immutable category -> capabilities table.
// It is built once and only read afterwards.
type Index struct {
	capabilities []capability.Capability
	categories   []category.Category
	byCategory   map[category.Category][]capability.Capability
}

// Build inverts the capability -> interests relation.
// Capabilities sharing a Name are registered once; the first one wins.
// Fan-out order for every category follows registration order.
func Build(caps []capability.Capability) *Index {
	idx := &Index{
		byCategory: make(map[category.Category][]capability.Capability),
	}

	names := make(map[string]struct{}, len(caps))

	for _, c := range caps {
		if _, dup := names[c.Name()]; dup {
			continue
		}
		names[c.Name()] = struct{}{}
		idx.capabilities = append(idx.capabilities, c)

		seen := make(map[category.Category]struct{})
		for _, cat := range c.Interests() {
			if _, ok := seen[cat]; ok {
				continue
			}
			seen[cat] = struct{}{}

			if _, ok := idx.byCategory[cat]; !ok {
				idx.categories = append(idx.categories, cat)
			}
			idx.byCategory[cat] = append(idx.byCategory[cat], c)
		}
	}

	return idx
}

// Lookup returns the capabilities interested in cat.
// The returned slice must not be modified.
func (i *Index) Lookup(cat category.Category) ([]capability.Capability, bool) {
	caps, ok := i.byCategory[cat]
	return caps, ok
}

// Categories returns the key set in first-registration order.
func (i *Index) Categories() []category.Category {
	out := make([]category.Category, len(i.categories))
	copy(out, i.categories)

	return out
}

// Capabilities returns the registered capabilities in registration order.
func (i *Index) Capabilities() []capability.Capability {
	out := make([]capability.Capability, len(i.capabilities))
	copy(out, i.capabilities)

	return out
}

// NodeFilter returns the inspector filter subscribing to exactly the indexed
// categories that have an AST binding.
func (i *Index) NodeFilter() []ast.Node {
	filter := make([]ast.Node, 0, len(i.categories))

	for _, cat := range i.categories {
		if proto, ok := category.Prototype(cat); ok {
			filter = append(filter, proto)
		}
	}

	return filter
}
