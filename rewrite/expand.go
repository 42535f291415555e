package rewrite

import (
	"github.com/robinvdvleuten/zipper"
	"github.com/robinvdvleuten/zipper/tree"
	"golang.org/x/exp/slices"
)

// Expand replaces the focused node with a sequence of sibling nodes. The
// replacements are wrapped in a node tagged with the Rewriter's ExpansionTag;
// the splice pass at the end of Run unwraps the wrapper into the parent's
// child list at the original position. Run skips wrapper contents during the
// remainder of the pass, so the produced nodes are never reprocessed.
//
// The line correction grows by the net change in emitted line count,
// len(replacements)-1. Replacement nodes without a line of their own are
// numbered consecutively from the original node's (already corrected) line.
//
// Comment re-homing: the first replacement inherits the original node's
// leading comments; the last replacement carries the original's
// end-of-expression marker, or a synthesized single-blank-line marker when the
// original had none, so the blank-line boundary that visually closed the group
// survives the split.
//
// Expanding the root is not supported: a root has no parent to splice into.
// With no replacements the focus is left untouched.
func (r *Rewriter) Expand(z zipper.Zipper, st State, replacements ...*tree.Node) (zipper.Zipper, State) {
	if len(replacements) == 0 {
		return z, st
	}
	original := z.Node()
	reps := slices.Clone(replacements)

	base := original.Meta.Line
	for i, rep := range reps {
		if rep.Meta.Line == 0 && base != 0 {
			reps[i] = rep.WithMeta(withLine(rep.Meta, base+i))
		}
	}

	first := reps[0].Meta
	first.LeadingComments = append(slices.Clone(original.Meta.LeadingComments), first.LeadingComments...)
	reps[0] = reps[0].WithMeta(first)

	last := reps[len(reps)-1].Meta
	if last.EndOfExpression == nil {
		if original.Meta.EndOfExpression != nil {
			last.EndOfExpression = original.Meta.EndOfExpression
		} else {
			last.EndOfExpression = &tree.EndOfExpression{Line: last.Line, BlankLineCount: 1}
		}
		reps[len(reps)-1] = reps[len(reps)-1].WithMeta(last)
	}

	wrapper := &tree.Node{
		Tag:      r.ExpansionTag,
		Children: reps,
		Meta:     tree.Meta{Line: base},
	}
	st.Expansions++
	return z.Replace(wrapper), st.Shift(len(reps) - 1)
}

// splice unwraps every expansion wrapper into its parent's child list,
// preserving sibling order. Each parent is rebuilt exactly once, during its
// own visit of a plain traversal over the edited tree.
func (r *Rewriter) splice(root *tree.Node) *tree.Node {
	z := zipper.Traverse(zipper.Zip(root), func(z zipper.Zipper) zipper.Zipper {
		n := z.Node()
		if !hasWrapperChild(n, r.ExpansionTag) {
			return z
		}
		children := make([]*tree.Node, 0, len(n.Children))
		for _, child := range n.Children {
			if child.Tag == r.ExpansionTag {
				children = append(children, child.Children...)
			} else {
				children = append(children, child)
			}
		}
		return z.Replace(n.WithChildren(children))
	})
	return z.Node()
}

func hasWrapperChild(n *tree.Node, tag tree.Tag) bool {
	for _, child := range n.Children {
		if child.Tag == tag {
			return true
		}
	}
	return false
}

func withLine(m tree.Meta, line int) tree.Meta {
	m.Line = line
	return m
}
