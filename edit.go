package zipper

import (
	"github.com/robinvdvleuten/zipper/tree"
	"golang.org/x/exp/slices"
)

// Replace swaps the focused node for the given one. The cursor does not move
// and the replacement's children are not revisited implicitly; the caller
// decides whether to descend into them.
func (z Zipper) Replace(n *tree.Node) Zipper {
	if z.done {
		return z
	}
	return Zipper{focus: n, path: z.path}
}

// InsertLeft inserts a node as the nearest left sibling of the focus. The
// cursor stays on the current focus; move with Left to land on the inserted
// node. It fails with ErrAtRoot because a root has no siblings.
func (z Zipper) InsertLeft(n *tree.Node) (Zipper, error) {
	if z.done {
		return z, ErrDone
	}
	if z.path == nil {
		return z, ErrAtRoot
	}
	c := z.path
	return Zipper{
		focus: z.focus,
		path: &crumb{
			left:   prepend(n, c.left),
			right:  c.right,
			tag:    c.tag,
			value:  c.value,
			meta:   c.meta,
			parent: c.parent,
		},
	}, nil
}

// InsertRight inserts a node as the nearest right sibling of the focus. The
// cursor stays on the current focus; move with Right to land on the inserted
// node. It fails with ErrAtRoot because a root has no siblings.
func (z Zipper) InsertRight(n *tree.Node) (Zipper, error) {
	if z.done {
		return z, ErrDone
	}
	if z.path == nil {
		return z, ErrAtRoot
	}
	c := z.path
	return Zipper{
		focus: z.focus,
		path: &crumb{
			left:   c.left,
			right:  prepend(n, c.right),
			tag:    c.tag,
			value:  c.value,
			meta:   c.meta,
			parent: c.parent,
		},
	}, nil
}

// Remove deletes the focused node and moves the cursor to the pre-order
// predecessor: the rightmost-deepest descendant of the nearest left sibling
// when one exists, otherwise the parent rebuilt without the removed focus.
//
// Removing the root fails with ErrAtRoot. That case is a contract violation
// rather than a recoverable branch: a zipper must always have a focus, so
// there is no well-defined result.
func (z Zipper) Remove() (Zipper, error) {
	if z.done {
		return z, ErrDone
	}
	if z.path == nil {
		return z, ErrAtRoot
	}
	c := z.path
	if len(c.left) > 0 {
		prev := Zipper{
			focus: c.left[0],
			path: &crumb{
				left:   c.left[1:],
				right:  c.right,
				tag:    c.tag,
				value:  c.value,
				meta:   c.meta,
				parent: c.parent,
			},
		}
		return prev.rightmostDescendant(), nil
	}
	parent := &tree.Node{
		Tag:      c.tag,
		Value:    c.value,
		Children: slices.Clone(c.right),
		Meta:     c.meta,
	}
	return Zipper{focus: parent, path: c.parent}, nil
}
