package tree

// Trivia is the non-semantic content attached to nodes: comments and blank
// line boundaries. The zipper never interprets trivia, but the correction
// overlay keeps its line anchors consistent while the tree is restructured,
// because the external renderer attaches a comment to the first node whose
// line is greater than or equal to the comment's line.

// Comment is a comment line that lexically precedes the node carrying it.
type Comment struct {
	Line    int
	Content string // Comment text including any comment prefix
}

// EndOfExpression marks the end of a logical group of nodes. The renderer
// emits BlankLineCount blank lines after the node carrying it, so visual
// grouping survives a rewrite that splits one node into several.
type EndOfExpression struct {
	Line           int
	BlankLineCount int
}
