// Package tree declares the node values a zipper navigates and edits.
//
// A Node is a tagged value with an ordered list of children and source
// metadata (line number, leading comments, end-of-expression marker). Nodes
// are produced by an external parser or constructed programmatically with the
// builders in this package, and rendered back to text by an external
// formatter. Nodes are immutable values: every edit constructs new nodes and
// untouched subtrees are shared between tree versions, which is safe because
// nothing is mutated after construction.
package tree

import (
	"github.com/alecthomas/repr"
	"golang.org/x/exp/slices"
)

// Tag identifies the kind of a node (e.g. "block", "call", "int").
// The zipper is agnostic over tags; they only matter to the tool editing the
// tree and to the external renderer.
type Tag string

// Node is a single node in an ordered tree. A leaf has no children and may
// carry a scalar Value; an interior node carries children and usually no
// Value. The zero Meta is valid and means "no source information".
type Node struct {
	Tag      Tag
	Value    string
	Children []*Node
	Meta     Meta
}

// Meta holds the source metadata attached to a node. Line is 1-indexed;
// 0 means the node has no known source line (e.g. synthesized nodes).
type Meta struct {
	Line            int
	LeadingComments []*Comment
	EndOfExpression *EndOfExpression
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Line returns the node's source line, 0 if unknown.
func (n *Node) Line() int { return n.Meta.Line }

// WithMeta returns a copy of the node with the given metadata.
// Children are shared with the receiver; the receiver is not modified.
func (n *Node) WithMeta(meta Meta) *Node {
	return &Node{Tag: n.Tag, Value: n.Value, Children: n.Children, Meta: meta}
}

// WithChildren returns a copy of the node with the given children.
// Metadata is shared with the receiver; the receiver is not modified.
func (n *Node) WithChildren(children []*Node) *Node {
	return &Node{Tag: n.Tag, Value: n.Value, Children: children, Meta: n.Meta}
}

// Walk visits n and every node below it in pre-order (node first, then its
// children left to right).
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		Walk(child, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node) { total++ })
	return total
}

// Equal reports whether two trees are structurally equal: same tags, values,
// metadata (including comments and end-of-expression markers), and children.
// There are no identity semantics; two independently built equal trees compare
// equal.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Value != b.Value || !MetaEqual(a.Meta, b.Meta) {
		return false
	}
	return slices.EqualFunc(a.Children, b.Children, Equal)
}

// MetaEqual reports whether two metadata values are equal, comments and
// end-of-expression markers included.
func MetaEqual(a, b Meta) bool {
	if a.Line != b.Line {
		return false
	}
	if !slices.EqualFunc(a.LeadingComments, b.LeadingComments, commentEqual) {
		return false
	}
	return endOfExpressionEqual(a.EndOfExpression, b.EndOfExpression)
}

func commentEqual(a, b *Comment) bool {
	return a.Line == b.Line && a.Content == b.Content
}

func endOfExpressionEqual(a, b *EndOfExpression) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Line == b.Line && a.BlankLineCount == b.BlankLineCount
}

// Dump returns a Go-syntax representation of the tree for debugging and test
// failure output.
func Dump(n *Node) string {
	return repr.String(n, repr.Indent("  "), repr.OmitEmpty(true))
}
