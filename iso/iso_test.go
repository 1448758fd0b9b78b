package iso_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphedit/builder"
	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/iso"
)

func TestIsomorphic_Basics(t *testing.T) {
	path := builder.MustStructure("p", false, []string{"a", "b", "c"}, []builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2)})
	pathRev := builder.MustStructure("q", false, []string{"c", "b", "a"}, []builder.EdgeSpec{builder.E(2, 1), builder.E(0, 1)})
	tri := builder.MustStructure("t", false, []string{"a", "b", "c"}, []builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2), builder.E(2, 0)})

	require.True(t, iso.Isomorphic(path, pathRev))
	require.True(t, iso.Isomorphic(path, pathRev, iso.WithNodeLabels()))
	require.False(t, iso.Isomorphic(path, tri))
	require.False(t, iso.Isomorphic(path, nil))

	empty := core.NewGraph()
	require.True(t, iso.Isomorphic(empty, core.NewGraph()))
	require.False(t, iso.Isomorphic(empty, core.NewGraph(core.WithDirected(true))))
}

func TestIsomorphic_LabelsMatterOnlyWhenAsked(t *testing.T) {
	g1 := builder.MustStructure("a", true, []string{"node 0", "node 1"}, []builder.EdgeSpec{{From: 1, To: 0, Label: "x"}})
	g2 := builder.MustStructure("b", true, []string{"n0", "n1"}, []builder.EdgeSpec{{From: 0, To: 1, Label: "y"}})

	require.True(t, iso.Isomorphic(g1, g2))
	require.False(t, iso.Isomorphic(g1, g2, iso.WithNodeLabels()))
	require.False(t, iso.Isomorphic(g1, g2, iso.WithEdgeLabels()))

	m, ok := iso.Mapping(g1, g2)
	require.True(t, ok)
	require.Equal(t, []int{1, 0}, m)
}

func TestIsomorphic_DirectionAndMultiplicity(t *testing.T) {
	fwd := builder.MustStructure("f", true, []string{"a", "b"}, []builder.EdgeSpec{builder.E(0, 1), builder.E(0, 1)})
	mixed := builder.MustStructure("m", true, []string{"a", "b"}, []builder.EdgeSpec{builder.E(0, 1), builder.E(1, 0)})
	require.False(t, iso.Isomorphic(fwd, mixed))

	loop := builder.MustStructure("l", false, []string{"a", "b"}, []builder.EdgeSpec{builder.E(0, 0), builder.E(0, 1)})
	noLoop := builder.MustStructure("n", false, []string{"a", "b", "c"}, []builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2)})
	require.False(t, iso.Isomorphic(loop, noLoop))

	loop2 := builder.MustStructure("l2", false, []string{"a", "b"}, []builder.EdgeSpec{builder.E(1, 0), builder.E(1, 1)})
	require.True(t, iso.Isomorphic(loop, loop2))
}

func TestIsomorphic_RegularNonIsomorphic(t *testing.T) {
	// Two 2-regular graphs on 6 nodes: C6 vs two triangles.
	c6, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	twoTri, err := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Cycle(3))
	require.NoError(t, err)
	require.False(t, iso.Isomorphic(c6, twoTri))
}

func TestGenerateRandomIsomorphicGraph(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, err := builder.Random("r", 7, 10, seed%2 == 0, seed,
			builder.WithNodeAlphabet("a", "b"), builder.WithEdgeAlphabet("x", "y"), builder.WithSelfLoops())
		require.NoError(t, err)

		h := iso.GenerateRandomIsomorphicGraph(g, seed, false)
		require.NoError(t, h.CheckConsistency())
		require.True(t, iso.Isomorphic(g, h, iso.WithNodeLabels(), iso.WithEdgeLabels()), "seed %d", seed)

		relabeled := iso.GenerateRandomIsomorphicGraph(g, seed, true)
		require.True(t, iso.Isomorphic(g, relabeled), "seed %d", seed)
		require.Equal(t, "node 0", relabeled.Labels()[0])
	}
	require.Nil(t, iso.GenerateRandomIsomorphicGraph(nil, 1, false))

	g := builder.MustStructure("g", false, []string{"a", "b", "c"}, nil)
	require.Equal(t,
		iso.GenerateRandomIsomorphicGraph(g, 5, false).String(),
		iso.GenerateRandomIsomorphicGraph(g, 5, false).String())
}

func TestMatcher_Extend(t *testing.T) {
	// source: 0-1, 1-2, 2-3 ; target: 0-1, 1-2
	src := builder.MustStructure("s", false, []string{"a", "b", "c", "d"},
		[]builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2), builder.E(2, 3)})
	dst := builder.MustStructure("d", false, []string{"a", "b", "c"},
		[]builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2)})
	m := iso.NewMatcher(src, dst)

	// Fix 3 as deleted and 0->0: the rest must complete 1->1, 2->2, but
	// free node 2 touches deleted 3, so no exact extension exists.
	_, ok := m.Extend([]int{0, iso.Free, iso.Free, iso.Deleted})
	require.False(t, ok)

	// Deleting 0 instead leaves 1-2-3, a path matching the target exactly.
	got, ok := m.Extend([]int{iso.Deleted, iso.Free, iso.Free, iso.Free})
	require.False(t, ok, "free 1 touches deleted 0")
	require.Nil(t, got)

	got, ok = m.Extend([]int{iso.Deleted, 0, iso.Free, iso.Free})
	require.True(t, ok)
	require.Equal(t, []int{iso.Deleted, 0, 1, 2}, got)

	_, ok = m.Extend([]int{0, 0, iso.Free, iso.Deleted})
	require.False(t, ok, "duplicate targets")
	_, ok = m.Extend([]int{0})
	require.False(t, ok, "wrong length")
}

func TestLabelHistogram(t *testing.T) {
	a := iso.LabelHistogram([]string{"x", "y", "y", "z"})
	b := iso.LabelHistogram([]string{"y", "z", "z"})
	require.Equal(t, 2, iso.CommonLabels(a, b))
	require.False(t, iso.SameHistogram(a, b))
	require.True(t, iso.SameHistogram(a, iso.LabelHistogram([]string{"y", "z", "x", "y"})))
}
