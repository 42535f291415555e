package tree

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		n := New("block")
		assert.Equal(t, Tag("block"), n.Tag)
		assert.True(t, n.IsLeaf())
		assert.Equal(t, 0, n.Line())
	})

	t.Run("WithChildren", func(t *testing.T) {
		n := New("block", WithChildren(Leaf("atom", "1"), Leaf("atom", "2")))
		assert.False(t, n.IsLeaf())
		assert.Equal(t, 2, len(n.Children))
		assert.Equal(t, "1", n.Children[0].Value)
	})

	t.Run("WithLine", func(t *testing.T) {
		assert.Equal(t, 12, New("block", WithLine(12)).Line())
	})
}

func TestLeaf(t *testing.T) {
	n := Leaf("int", "42", WithLine(3))
	assert.Equal(t, Tag("int"), n.Tag)
	assert.Equal(t, "42", n.Value)
	assert.Equal(t, 3, n.Line())
	assert.True(t, n.IsLeaf())
}

func TestWithComments(t *testing.T) {
	first := &Comment{Line: 1, Content: "# section"}
	second := &Comment{Line: 2, Content: "# detail"}

	n := Leaf("stmt", "x", WithComments(first), WithComments(second))
	assert.Equal(t, 2, len(n.Meta.LeadingComments))
	assert.Equal(t, "# section", n.Meta.LeadingComments[0].Content)
}

func TestWithEndOfExpression(t *testing.T) {
	n := Leaf("stmt", "x", WithEndOfExpression(9, 2))
	assert.Equal(t, 9, n.Meta.EndOfExpression.Line)
	assert.Equal(t, 2, n.Meta.EndOfExpression.BlankLineCount)
}
