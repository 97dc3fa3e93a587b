package category

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want Category
	}{
		{name: "composite literal", node: &ast.CompositeLit{}, want: CompositeLit},
		{name: "call", node: &ast.CallExpr{}, want: Call},
		{name: "func literal", node: &ast.FuncLit{}, want: FuncLit},
		{name: "binary", node: &ast.BinaryExpr{}, want: Binary},
		{name: "assign", node: &ast.AssignStmt{}, want: Assign},
		{name: "go statement", node: &ast.GoStmt{}, want: Unknown},
		{name: "ident", node: &ast.Ident{}, want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Of(tt.node))
		})
	}
}

func TestPrototypeRoundTrip(t *testing.T) {
	for _, c := range []Category{CompositeLit, Call, FuncLit, Binary, Assign} {
		proto, ok := Prototype(c)
		require.True(t, ok, "category %s has no prototype", c)
		assert.Equal(t, c, Of(proto))
	}
}

func TestPrototypeUnknown(t *testing.T) {
	_, ok := Prototype(Category("range-statement"))
	assert.False(t, ok)

	_, ok = Prototype(Unknown)
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, "call", Call.String())
}
