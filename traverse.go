package zipper

// Visit transforms the zipper at one node during a traversal. It must be free
// of side effects outside the returned zipper.
type Visit func(Zipper) Zipper

// VisitState transforms the zipper and an explicit accumulator at one node.
// The accumulator exists because a single edit, such as expanding one node
// into several siblings, must influence how every later node is processed;
// a stateless per-node function cannot express that dependency.
type VisitState[S any] func(Zipper, S) (Zipper, S)

// Traverse applies visit to every node in pre-order, advancing with Next
// after each visit, until the Done sentinel is reached. The terminal zipper
// is returned; its Root is the fully edited tree.
//
// Each node is visited through a single call site, and the successor is
// always computed against the tree as just edited by visit, so structural
// edits take effect immediately in the traversal order.
func Traverse(z Zipper, visit Visit) Zipper {
	for !z.done {
		z = visit(z)
		z = z.Next()
	}
	return z
}

// TraverseState is Traverse with an explicit accumulator threaded through
// every visit. The accumulator is carried as a value returned alongside the
// zipper at each step, never as ambient state, so each step stays
// referentially transparent and independently testable.
func TraverseState[S any](z Zipper, state S, visit VisitState[S]) (Zipper, S) {
	for !z.done {
		z, state = visit(z, state)
		z = z.Next()
	}
	return z, state
}
