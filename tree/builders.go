// Constructor functions for programmatically building tree nodes. These
// builders make it easy to construct replacement subtrees in rewrite tools and
// fixtures in tests.
//
// The builders use functional options for metadata, following Go idioms for
// configurable constructors.
package tree

// NodeOption is a functional option for configuring a Node under construction.
type NodeOption func(*Node)

// New creates an interior node with the given tag.
// Children and metadata can be set using functional options.
//
// Example:
//
//	block := tree.New("block",
//	    tree.WithLine(3),
//	    tree.WithChildren(tree.Leaf("int", "1"), tree.Leaf("int", "2")),
//	)
func New(tag Tag, opts ...NodeOption) *Node {
	n := &Node{Tag: tag}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Leaf creates a childless node with the given tag and scalar value.
//
// Example:
//
//	one := tree.Leaf("int", "1", tree.WithLine(2))
func Leaf(tag Tag, value string, opts ...NodeOption) *Node {
	n := &Node{Tag: tag, Value: value}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithChildren sets the node's children in order.
func WithChildren(children ...*Node) NodeOption {
	return func(n *Node) {
		n.Children = children
	}
}

// WithLine sets the node's source line (1-indexed).
func WithLine(line int) NodeOption {
	return func(n *Node) {
		n.Meta.Line = line
	}
}

// WithComments attaches leading comments to the node.
func WithComments(comments ...*Comment) NodeOption {
	return func(n *Node) {
		n.Meta.LeadingComments = append(n.Meta.LeadingComments, comments...)
	}
}

// WithEndOfExpression attaches an end-of-expression marker forcing blanks
// blank lines after the node in rendered output.
func WithEndOfExpression(line, blanks int) NodeOption {
	return func(n *Node) {
		n.Meta.EndOfExpression = &EndOfExpression{Line: line, BlankLineCount: blanks}
	}
}
