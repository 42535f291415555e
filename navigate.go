package zipper

import (
	"github.com/robinvdvleuten/zipper/tree"
)

// Down moves the focus to the first child. It fails with ErrNoChildren on a
// leaf. On failure the receiver is returned unchanged so callers can keep
// navigating from where they were.
func (z Zipper) Down() (Zipper, error) {
	if z.done {
		return z, ErrDone
	}
	if len(z.focus.Children) == 0 {
		return z, ErrNoChildren
	}
	return Zipper{
		focus: z.focus.Children[0],
		path: &crumb{
			right:  z.focus.Children[1:],
			tag:    z.focus.Tag,
			value:  z.focus.Value,
			meta:   z.focus.Meta,
			parent: z.path,
		},
	}, nil
}

// Up rebuilds the parent from the current crumb and moves the focus onto it.
// It fails with ErrAtRoot when there is no crumb left.
func (z Zipper) Up() (Zipper, error) {
	if z.done {
		return z, ErrDone
	}
	if z.path == nil {
		return z, ErrAtRoot
	}
	return Zipper{focus: z.path.rebuildParent(z.focus), path: z.path.parent}, nil
}

// Left moves the focus onto the nearest left sibling. It fails with
// ErrNoSibling at the root or at the leftmost position. The shift is a
// constant-size edit to the crumb: one node moves between the focus and each
// sibling list, nothing is scanned.
func (z Zipper) Left() (Zipper, error) {
	if z.done {
		return z, ErrDone
	}
	if z.path == nil || len(z.path.left) == 0 {
		return z, ErrNoSibling
	}
	c := z.path
	return Zipper{
		focus: c.left[0],
		path: &crumb{
			left:   c.left[1:],
			right:  prepend(z.focus, c.right),
			tag:    c.tag,
			value:  c.value,
			meta:   c.meta,
			parent: c.parent,
		},
	}, nil
}

// Right moves the focus onto the nearest right sibling. It fails with
// ErrNoSibling at the root or at the rightmost position.
func (z Zipper) Right() (Zipper, error) {
	if z.done {
		return z, ErrDone
	}
	if z.path == nil || len(z.path.right) == 0 {
		return z, ErrNoSibling
	}
	c := z.path
	return Zipper{
		focus: c.right[0],
		path: &crumb{
			left:   prepend(z.focus, c.left),
			right:  c.right[1:],
			tag:    c.tag,
			value:  c.value,
			meta:   c.meta,
			parent: c.parent,
		},
	}, nil
}

// Next moves to the pre-order successor: first child if any, else the next
// right sibling, else the right sibling of the nearest ancestor that has one.
// When the focus is the last node in pre-order, Next returns the Done sentinel
// carrying the fully reconstructed root. Next on the sentinel is a no-op.
//
// Next is always computed against the current, possibly just-edited tree;
// there is no precomputed order to go stale.
func (z Zipper) Next() Zipper {
	if z.done {
		return z
	}
	if down, err := z.Down(); err == nil {
		return down
	}
	if right, err := z.Right(); err == nil {
		return right
	}
	for {
		up, err := z.Up()
		if err != nil {
			return Zipper{focus: z.focus, done: true}
		}
		z = up
		if right, err := z.Right(); err == nil {
			return right
		}
	}
}

// Prev moves to the pre-order predecessor: the rightmost-deepest descendant of
// the left sibling if there is one, else the parent. It fails with ErrAtRoot
// only at the very start of the traversal. Prev on the Done sentinel is a
// no-op returning the sentinel.
func (z Zipper) Prev() (Zipper, error) {
	if z.done {
		return z, nil
	}
	if left, err := z.Left(); err == nil {
		return left.rightmostDescendant(), nil
	}
	return z.Up()
}

// rightmostDescendant descends to the last child repeatedly until the focus is
// a leaf, returning the deepest rightmost node below the current focus.
func (z Zipper) rightmostDescendant() Zipper {
	for len(z.focus.Children) > 0 {
		children := z.focus.Children
		last := len(children) - 1
		left := make([]*tree.Node, 0, last)
		for i := last - 1; i >= 0; i-- {
			left = append(left, children[i])
		}
		z = Zipper{
			focus: children[last],
			path: &crumb{
				left:   left,
				tag:    z.focus.Tag,
				value:  z.focus.Value,
				meta:   z.focus.Meta,
				parent: z.path,
			},
		}
	}
	return z
}

// prepend returns a fresh slice with n in front of rest. The crumb slices are
// shared across zipper values, so sibling edits always allocate instead of
// appending in place.
func prepend(n *tree.Node, rest []*tree.Node) []*tree.Node {
	out := make([]*tree.Node, 0, len(rest)+1)
	out = append(out, n)
	return append(out, rest...)
}
