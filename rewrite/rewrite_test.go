package rewrite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/robinvdvleuten/zipper"
	"github.com/robinvdvleuten/zipper/telemetry"
	"github.com/robinvdvleuten/zipper/tree"
)

func stmt(value string, line int, opts ...tree.NodeOption) *tree.Node {
	opts = append([]tree.NodeOption{tree.WithLine(line)}, opts...)
	return tree.Leaf("stmt", value, opts...)
}

func module(children ...*tree.Node) *tree.Node {
	return tree.New("module", tree.WithLine(1), tree.WithChildren(children...))
}

// expandValue returns a transform that expands the statement with the given
// value into the given replacements.
func (r *Rewriter) expandValueTransform(value string, replacements ...*tree.Node) Transform {
	return func(z zipper.Zipper, st State) (zipper.Zipper, State) {
		if z.Node().Value == value {
			return r.Expand(z, st, replacements...)
		}
		return z, st
	}
}

func TestRunNoEdits(t *testing.T) {
	root := module(
		stmt("a", 2),
		stmt("b", 4, tree.WithComments(&tree.Comment{Line: 3, Content: "# note"})),
		stmt("c", 5),
	)

	edited, state, err := New().Run(context.Background(), root, func(z zipper.Zipper, st State) (zipper.Zipper, State) {
		return z, st
	})
	assert.NoError(t, err)
	assert.Equal(t, 0, state.LineCorrection)
	assert.Equal(t, 0, state.Expansions)
	assert.True(t, tree.Equal(root, edited))
}

func TestRunExpansion(t *testing.T) {
	root := module(
		stmt("a", 2),
		stmt("b", 4, tree.WithComments(&tree.Comment{Line: 3, Content: "# note"})),
		stmt("c", 5),
		stmt("d", 7, tree.WithComments(&tree.Comment{Line: 6, Content: "# tail"})),
	)

	r := New()
	transform := r.expandValueTransform("b", stmt("b1", 0), stmt("b2", 0), stmt("b3", 0))

	edited, state, err := r.Run(context.Background(), root, transform)
	assert.NoError(t, err)
	assert.Equal(t, 2, state.LineCorrection)
	assert.Equal(t, 1, state.Expansions)

	want := module(
		stmt("a", 2),
		stmt("b1", 4, tree.WithComments(&tree.Comment{Line: 3, Content: "# note"})),
		stmt("b2", 5),
		stmt("b3", 6, tree.WithEndOfExpression(6, 1)),
		stmt("c", 7),
		stmt("d", 9, tree.WithComments(&tree.Comment{Line: 8, Content: "# tail"})),
	)
	assert.Equal(t, want, edited)

	// No wrapper nodes survive the splice pass.
	tree.Walk(edited, func(n *tree.Node) {
		assert.NotEqual(t, DefaultExpansionTag, n.Tag)
	})
}

func TestRunCorrectionPropagatesFurther(t *testing.T) {
	// Two expansions in the same scope: the second happens in an already
	// shifted region and adds its own delta on top of the ambient one.
	root := module(
		stmt("a", 2),
		stmt("b", 3),
		stmt("c", 4),
		stmt("e", 5),
	)

	r := New()
	expandB := r.expandValueTransform("b", stmt("b1", 0), stmt("b2", 0))
	expandC := r.expandValueTransform("c", stmt("c1", 0), stmt("c2", 0), stmt("c3", 0))
	transform := func(z zipper.Zipper, st State) (zipper.Zipper, State) {
		z, st = expandB(z, st)
		return expandC(z, st)
	}

	edited, state, err := r.Run(context.Background(), root, transform)
	assert.NoError(t, err)
	assert.Equal(t, 3, state.LineCorrection)
	assert.Equal(t, 2, state.Expansions)

	want := module(
		stmt("a", 2),
		stmt("b1", 3),
		stmt("b2", 4, tree.WithEndOfExpression(4, 1)),
		stmt("c1", 5),
		stmt("c2", 6),
		stmt("c3", 7, tree.WithEndOfExpression(7, 1)),
		stmt("e", 8),
	)
	assert.Equal(t, want, edited)
	assert.NoError(t, CheckMonotonic(edited))
}

func TestRunProducedNodesAreNotReprocessed(t *testing.T) {
	// The produced statements match the expansion trigger; without the
	// wrapper skip the pass would recurse forever.
	root := module(stmt("b", 2), stmt("z", 3))

	r := New()
	visits := 0
	transform := func(z zipper.Zipper, st State) (zipper.Zipper, State) {
		visits++
		assert.True(t, visits < 100)
		if z.Node().Value == "b" {
			return r.Expand(z, st, stmt("b", 0), stmt("b", 0))
		}
		return z, st
	}

	edited, state, err := r.Run(context.Background(), root, transform)
	assert.NoError(t, err)
	assert.Equal(t, 1, state.Expansions)
	assert.Equal(t, 3, len(edited.Children))
}

func TestRunConsistencyChecks(t *testing.T) {
	t.Run("NonMonotonicLines", func(t *testing.T) {
		root := module(stmt("a", 2), stmt("c", 3))
		transform := func(z zipper.Zipper, st State) (zipper.Zipper, State) {
			if z.Node().Value == "c" {
				return z.Replace(stmt("c", 1)), st
			}
			return z, st
		}

		_, _, err := New().Run(context.Background(), root, transform)
		assert.True(t, errors.Is(err, ErrNonMonotonic))
	})

	t.Run("CommentsLost", func(t *testing.T) {
		root := module(stmt("b", 3, tree.WithComments(&tree.Comment{Line: 2, Content: "# gone"})))
		transform := func(z zipper.Zipper, st State) (zipper.Zipper, State) {
			if z.Node().Value == "b" {
				return z.Replace(stmt("b", 3)), st
			}
			return z, st
		}

		_, _, err := New().Run(context.Background(), root, transform)
		assert.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "comments lost"))
	})

	t.Run("Disabled", func(t *testing.T) {
		root := module(stmt("b", 3, tree.WithComments(&tree.Comment{Line: 2, Content: "# gone"})))
		transform := func(z zipper.Zipper, st State) (zipper.Zipper, State) {
			if z.Node().Value == "b" {
				return z.Replace(stmt("b", 3)), st
			}
			return z, st
		}

		_, _, err := New(WithConsistencyChecks(false)).Run(context.Background(), root, transform)
		assert.NoError(t, err)
	})
}

func TestRunTelemetry(t *testing.T) {
	root := module(
		stmt("a", 2),
		stmt("b", 3),
		stmt("c", 4),
		stmt("d", 5),
	)

	r := New()
	collector := telemetry.NewPassCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	_, _, err := r.Run(ctx, root, r.expandValueTransform("b", stmt("b1", 0), stmt("b2", 0), stmt("b3", 0)))
	assert.NoError(t, err)

	// The produced nodes are skipped, so only the original five nodes are
	// handed to the transform.
	assert.Equal(t, 5, collector.Visits())
	assert.Equal(t, 1, collector.Edits())
	assert.Equal(t, 2, collector.Shift())
}

func TestStateShift(t *testing.T) {
	st := State{}.Shift(2).Shift(-1)
	assert.Equal(t, 1, st.LineCorrection)
}
