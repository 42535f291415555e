package rewrite

import (
	"errors"
	"fmt"

	"github.com/robinvdvleuten/zipper/tree"
)

// ErrNonMonotonic indicates that line numbers read off nodes in traversal
// order decrease somewhere in the tree. A renderer matching comments to nodes
// by line would misattribute them, so this is a logic fault in the transform
// that produced the tree.
var ErrNonMonotonic = errors.New("rewrite: line numbers decrease in traversal order")

// CorrectLines returns a copy of the subtree with delta added to every line
// field and every comment anchor below n, including end-of-expression markers.
// It is a pure whole-subtree rewrite: the input is never modified, and with a
// delta of zero the input is returned as-is.
func CorrectLines(n *tree.Node, delta int) *tree.Node {
	if n == nil || delta == 0 {
		return n
	}
	children := make([]*tree.Node, len(n.Children))
	for i, child := range n.Children {
		children[i] = CorrectLines(child, delta)
	}
	return &tree.Node{Tag: n.Tag, Value: n.Value, Children: children, Meta: shiftMeta(n.Meta, delta)}
}

// shiftMeta returns the metadata with every line anchor moved by delta.
// Unknown lines (0) stay unknown.
func shiftMeta(m tree.Meta, delta int) tree.Meta {
	if m.Line != 0 {
		m.Line += delta
	}
	if len(m.LeadingComments) > 0 {
		comments := make([]*tree.Comment, len(m.LeadingComments))
		for i, c := range m.LeadingComments {
			comments[i] = &tree.Comment{Line: c.Line + delta, Content: c.Content}
		}
		m.LeadingComments = comments
	}
	if m.EndOfExpression != nil {
		m.EndOfExpression = &tree.EndOfExpression{
			Line:           m.EndOfExpression.Line + delta,
			BlankLineCount: m.EndOfExpression.BlankLineCount,
		}
	}
	return m
}

// CheckMonotonic verifies that node lines are non-decreasing in pre-order,
// ignoring nodes without a known line. It returns an error wrapping
// ErrNonMonotonic at the first violation.
func CheckMonotonic(root *tree.Node) error {
	last := 0
	var violation error
	tree.Walk(root, func(n *tree.Node) {
		if violation != nil || n.Meta.Line == 0 {
			return
		}
		if n.Meta.Line < last {
			violation = fmt.Errorf("%w: line %d after line %d (%s)", ErrNonMonotonic, n.Meta.Line, last, n.Tag)
			return
		}
		last = n.Meta.Line
	})
	return violation
}

// Comments collects every leading comment in the tree in traversal order.
// Used by the comment-preservation assertion and by renderers that need the
// full comment list alongside the edited tree.
func Comments(root *tree.Node) []*tree.Comment {
	var comments []*tree.Comment
	tree.Walk(root, func(n *tree.Node) {
		comments = append(comments, n.Meta.LeadingComments...)
	})
	return comments
}
