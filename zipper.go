// Package zipper provides a cursor over an immutable tree that supports
// navigation and local edits without rebuilding the whole structure.
//
// A Zipper is a pure value: every operation takes a Zipper and returns a new
// one, and no operation mutates a previously returned value. The cursor pairs
// the focused node with a path of breadcrumbs, each recording the siblings and
// parent context of one ancestor level, so the full tree can always be
// reconstructed from the cursor alone.
//
// Example usage:
//
//	z := zipper.Zip(root)
//	z, _ = z.Down()
//	z, _ = z.Right()
//	z = z.Replace(tree.Leaf("int", "42"))
//	edited := z.Root()
//
// Navigation failures (ErrNoChildren, ErrAtRoot, ErrNoSibling) are ordinary
// branch outcomes, not faults; callers use them as control flow and must
// handle every case explicitly.
package zipper

import (
	"github.com/robinvdvleuten/zipper/tree"
	"golang.org/x/exp/slices"
)

// crumb records everything needed to rebuild one ancestor level without the
// focus itself: the siblings on each side (nearest first), the parent's own
// fields, and the crumb of the level above.
type crumb struct {
	left   []*tree.Node // left siblings, nearest to the focus first
	right  []*tree.Node // right siblings, nearest to the focus first
	tag    tree.Tag
	value  string
	meta   tree.Meta
	parent *crumb // nil when the parent is the root
}

// Zipper is a cursor into a tree: the focused node plus the path back to the
// root. The zero Zipper is not valid; create one with Zip.
//
// A Zipper is one of three states: at the root (no path), inside the tree
// (focus plus path), or the Done sentinel produced when Next walks off the end
// of the root. Done is a distinct state rather than an overloaded root so
// "traversal finished" is distinguishable from "traversal never started".
type Zipper struct {
	focus *tree.Node
	path  *crumb
	done  bool
}

// Zip creates a zipper focused on the root of the given tree.
func Zip(root *tree.Node) Zipper {
	return Zipper{focus: root}
}

// Node returns the focused node without reconstructing ancestors.
// On the Done sentinel it returns the final root.
func (z Zipper) Node() *tree.Node {
	return z.focus
}

// IsDone reports whether the zipper is the Done sentinel.
func (z Zipper) IsDone() bool {
	return z.done
}

// IsRoot reports whether the focus is the root of the tree.
func (z Zipper) IsRoot() bool {
	return !z.done && z.path == nil
}

// Root reconstructs and returns the full tree by walking up until the path is
// exhausted. The cursor's edits so far are all reflected in the result. Root
// never fails: a zipper reachable through this package's operations can always
// be rebuilt into a tree.
func (z Zipper) Root() *tree.Node {
	if z.done {
		return z.focus
	}
	for {
		up, err := z.Up()
		if err != nil {
			return z.focus
		}
		z = up
	}
}

// Equal reports whether two zippers address the same position in structurally
// equal trees: equal focus, equal path, and the same done state.
func (z Zipper) Equal(other Zipper) bool {
	if z.done != other.done {
		return false
	}
	if !tree.Equal(z.focus, other.focus) {
		return false
	}
	a, b := z.path, other.path
	for a != nil && b != nil {
		if a.tag != b.tag || a.value != b.value || !tree.MetaEqual(a.meta, b.meta) {
			return false
		}
		if !slices.EqualFunc(a.left, b.left, tree.Equal) || !slices.EqualFunc(a.right, b.right, tree.Equal) {
			return false
		}
		a, b = a.parent, b.parent
	}
	return a == nil && b == nil
}

// Ancestors returns the tags of the focus's ancestors, nearest first. It is
// empty at the root and on the Done sentinel. Tools use it to decide how to
// treat a node based on the context it sits in.
func (z Zipper) Ancestors() []tree.Tag {
	var tags []tree.Tag
	for c := z.path; c != nil; c = c.parent {
		tags = append(tags, c.tag)
	}
	return tags
}

// rebuildParent folds the crumb's siblings around the given focus back into
// the parent node the crumb was taken from.
func (c *crumb) rebuildParent(focus *tree.Node) *tree.Node {
	children := make([]*tree.Node, 0, len(c.left)+1+len(c.right))
	for i := len(c.left) - 1; i >= 0; i-- {
		children = append(children, c.left[i])
	}
	children = append(children, focus)
	children = append(children, c.right...)
	return &tree.Node{Tag: c.tag, Value: c.value, Children: children, Meta: c.meta}
}
