// Package rewrite keeps line-number and comment metadata consistent while a
// tree is being restructured.
//
// Structural edits that change the number of emitted source lines must
// propagate a correction to every node visited afterward, or the external
// renderer misattributes comments: it matches a comment to the first node
// whose line is greater than or equal to the comment's line. The Rewriter
// drives a stateful pre-order traversal whose accumulator carries the
// cumulative line correction, shifts each visited node by it, and splices
// one-to-many expansions into the parent's child list in a second pass.
//
// Example usage:
//
//	r := rewrite.New()
//	edited, state, err := r.Run(ctx, root, func(z zipper.Zipper, st rewrite.State) (zipper.Zipper, rewrite.State) {
//	    if z.Node().Tag == "multidef" {
//	        return r.Expand(z, st, splitDefs(z.Node())...)
//	    }
//	    return z, st
//	})
package rewrite

import (
	"context"
	"fmt"

	"github.com/robinvdvleuten/zipper"
	"github.com/robinvdvleuten/zipper/telemetry"
	"github.com/robinvdvleuten/zipper/tree"
	"golang.org/x/exp/slices"
)

// DefaultExpansionTag marks wrapper nodes holding the results of a one-to-many
// expansion until the splice pass unwraps them into the parent's child list.
const DefaultExpansionTag tree.Tag = "expanded"

// State is the accumulator threaded through a rewrite pass. It is carried as
// an explicit value returned alongside the zipper at each step, never as
// ambient state.
type State struct {
	// LineCorrection is the cumulative shift applied to the line metadata
	// of every node visited from now on. An edit that changes the emitted
	// line count adds the net change here.
	LineCorrection int

	// Expansions counts the one-to-many expansions performed so far.
	Expansions int
}

// Shift returns the state with delta added to the line correction. Edits that
// change the emitted line count without going through Expand (a removal, a
// merge of several nodes into one) report their net change with Shift.
func (s State) Shift(delta int) State {
	s.LineCorrection += delta
	return s
}

// Transform rewrites the tree at one node during a pass. It receives the
// cursor and the current state and returns both, possibly edited. Transforms
// performing a one-to-many expansion go through Rewriter.Expand so the
// correction and comment re-homing rules are applied.
type Transform func(zipper.Zipper, State) (zipper.Zipper, State)

// Rewriter runs correction-aware rewrite passes over trees.
type Rewriter struct {
	// ExpansionTag is the wrapper tag used by Expand and unwrapped by the
	// splice pass. Trees being rewritten must not use it for their own
	// nodes.
	ExpansionTag tree.Tag

	// ConsistencyChecks enables the internal assertions run after a pass:
	// line monotonicity and comment preservation. Violations are logic
	// faults in the transform, reported as errors from Run.
	ConsistencyChecks bool
}

// Option is an option for configuring a Rewriter.
type Option func(*Rewriter)

// WithExpansionTag overrides the wrapper tag used for expansions.
func WithExpansionTag(tag tree.Tag) Option {
	return func(r *Rewriter) {
		r.ExpansionTag = tag
	}
}

// WithConsistencyChecks enables or disables the post-pass assertions.
func WithConsistencyChecks(enabled bool) Option {
	return func(r *Rewriter) {
		r.ConsistencyChecks = enabled
	}
}

// New creates a Rewriter with the given options. Consistency checks are
// enabled by default.
func New(opts ...Option) *Rewriter {
	r := &Rewriter{
		ExpansionTag:      DefaultExpansionTag,
		ConsistencyChecks: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run drives one corrected rewrite pass over the tree: it traverses in
// pre-order, shifts each visited node's metadata by the correction accumulated
// so far, applies the transform, and finally splices expansion wrappers into
// their parents' child lists. The edited tree and the terminal state are
// returned.
//
// Nodes inside an expansion wrapper are final when the wrapper is created;
// the pass does not re-shift them and does not hand them to the transform, so
// produced nodes are never subject to the expansion rule that made them.
//
// A telemetry collector installed in ctx receives per-pass counters.
func (r *Rewriter) Run(ctx context.Context, root *tree.Node, transform Transform) (*tree.Node, State, error) {
	collector := telemetry.FromContext(ctx)
	commentsBefore := len(Comments(root))

	z, state := zipper.TraverseState(zipper.Zip(root), State{}, func(z zipper.Zipper, st State) (zipper.Zipper, State) {
		if r.expanded(z) {
			return z, st
		}
		collector.NodeVisited()
		if st.LineCorrection != 0 {
			z = z.Replace(z.Node().WithMeta(shiftMeta(z.Node().Meta, st.LineCorrection)))
		}
		before := z.Node()
		z, st = transform(z, st)
		if z.Node() != before {
			collector.EditApplied()
		}
		return z, st
	})

	edited := r.splice(z.Node())
	collector.LineShift(state.LineCorrection)

	if r.ConsistencyChecks {
		if err := CheckMonotonic(edited); err != nil {
			return nil, state, err
		}
		if got := len(Comments(edited)); got < commentsBefore {
			return nil, state, fmt.Errorf("rewrite: comments lost during pass: %d before, %d after", commentsBefore, got)
		}
	}
	return edited, state, nil
}

// expanded reports whether the focus is an expansion wrapper or sits inside
// one.
func (r *Rewriter) expanded(z zipper.Zipper) bool {
	if z.Node().Tag == r.ExpansionTag {
		return true
	}
	return slices.Contains(z.Ancestors(), r.ExpansionTag)
}
