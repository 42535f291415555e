package zipper

import "errors"

// Navigation outcomes. These are branch signals, not faults: Next's climb loop
// and Remove's fallback depend on them, and callers are expected to check each
// one explicitly with errors.Is.
var (
	// ErrNoChildren indicates that Down was called on a leaf.
	ErrNoChildren = errors.New("zipper: focus has no children")

	// ErrAtRoot indicates that an operation requiring a parent or sibling
	// context was called on the root. For Remove this is a contract
	// violation: a zipper must always have a focus, so removing the root
	// has no well-defined result.
	ErrAtRoot = errors.New("zipper: focus is the root")

	// ErrNoSibling indicates that Left or Right was called with no sibling
	// in that direction.
	ErrNoSibling = errors.New("zipper: no sibling in that direction")

	// ErrDone indicates that a structural operation was called on the Done
	// sentinel. Next and Prev on the sentinel are no-ops instead.
	ErrDone = errors.New("zipper: traversal has finished")
)
