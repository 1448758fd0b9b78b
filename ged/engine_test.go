package ged_test

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphedit/builder"
	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
	"github.com/katalvlaran/graphedit/ged"
	"github.com/katalvlaran/graphedit/iso"
)

func TestNew_CostMapValidation(t *testing.T) {
	relabel := ged.DefaultOptions()
	relabel.Relabel = true

	for _, algo := range ged.Algorithms() {
		_, err := ged.New(algo, scenarioCosts(), ged.DefaultOptions())
		require.NoError(t, err, algo.String())

		missing := scenarioCosts()
		delete(missing, edit.AddEdge)
		_, err = ged.New(algo, missing, ged.DefaultOptions())
		assert.True(t, errors.Is(err, costmodel.ErrMissingCost), "%s: %v", algo, err)

		// RELABEL_NODE without relabeling is rejected, not ignored
		extra := scenarioCosts()
		extra[edit.RelabelNode] = 1
		_, err = ged.New(algo, extra, ged.DefaultOptions())
		assert.True(t, errors.Is(err, costmodel.ErrUnexpectedCost), "%s: %v", algo, err)

		_, err = ged.New(algo, scenarioCosts(), relabel)
		assert.True(t, errors.Is(err, costmodel.ErrMissingCost), "%s: %v", algo, err)
		_, err = ged.New(algo, extra, relabel)
		require.NoError(t, err, algo.String())

		negative := scenarioCosts()
		negative[edit.DeleteNode] = -1
		_, err = ged.New(algo, negative, ged.DefaultOptions())
		assert.True(t, errors.Is(err, costmodel.ErrInvalidCost), "%s: %v", algo, err)

		bad := ged.DefaultOptions()
		bad.Epsilon = -1
		_, err = ged.New(algo, scenarioCosts(), bad)
		assert.True(t, errors.Is(err, ged.ErrInvalidOptions), "%s: %v", algo, err)
	}
}

func TestNew_HausdorffNeedsAComponent(t *testing.T) {
	opts := ged.DefaultOptions()
	opts.NodeCosts, opts.EdgeCosts = false, false
	_, err := ged.NewHausdorff(scenarioCosts(), opts)
	require.ErrorIs(t, err, ged.ErrInvalidOptions)

	opts.EdgeCosts = true
	_, err = ged.NewHausdorff(scenarioCosts(), opts)
	require.NoError(t, err)
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range ged.Algorithms() {
		got, err := ged.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		require.Equal(t, algo, got)
	}
	for _, s := range []string{"Lower-Bound", "lower_bound", " EXACT "} {
		_, err := ged.ParseAlgorithm(s)
		require.NoError(t, err, s)
	}
	_, err := ged.ParseAlgorithm("beam")
	require.ErrorIs(t, err, ged.ErrUnknownAlgorithm)
	_, err = ged.New(ged.Algorithm(42), scenarioCosts(), ged.DefaultOptions())
	require.ErrorIs(t, err, ged.ErrUnknownAlgorithm)
	require.Equal(t, "unknown", ged.Algorithm(42).String())
}

func TestSimilarity_InputErrors(t *testing.T) {
	directed := builder.MustStructure("d", true, []string{"a"}, nil)
	undirected := builder.MustStructure("u", false, []string{"a"}, nil)

	for _, algo := range ged.Algorithms() {
		eng, err := ged.New(algo, scenarioCosts(), ged.DefaultOptions())
		require.NoError(t, err)

		_, err = eng.Similarity(nil, undirected)
		assert.ErrorIs(t, err, ged.ErrNilGraph, algo.String())
		_, err = eng.Similarity(directed, nil)
		assert.ErrorIs(t, err, ged.ErrNilGraph, algo.String())
		_, err = eng.Similarity(directed, undirected)
		assert.ErrorIs(t, err, ged.ErrDirectednessMismatch, algo.String())
		assert.Zero(t, eng.EditList().Len(), "no witness after a failed call")
	}
}

func TestEditList_IsACopy(t *testing.T) {
	g1 := builder.MustStructure("g1", false, []string{"a", "b"}, []builder.EdgeSpec{builder.E(0, 1)})
	g2 := core.NewGraph()
	bp, err := ged.NewBipartite(scenarioCosts(), ged.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, bp.EditList().Len())

	d, err := bp.Similarity(g1, g2)
	require.NoError(t, err)
	require.Equal(t, 4.0+2+2, d)

	l := bp.EditList()
	l.Add(edit.NewAddNode("x", 100))
	require.Equal(t, d, bp.EditList().Cost())
}

func TestMappingCost(t *testing.T) {
	// path a-b-c against triangle a-b-c
	g1 := builder.MustStructure("p", false, []string{"a", "b", "c"}, []builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2)})
	g2 := builder.MustStructure("t", false, []string{"a", "b", "c"}, []builder.EdgeSpec{builder.E(0, 1), builder.E(1, 2), builder.E(2, 0)})

	d, err := ged.MappingCost(g1, g2, []int{0, 1, 2}, scenarioCosts(), false)
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	// dropping node 2 and re-adding it: delete 1 edge + node, add node + 2 edges
	list, err := ged.EditListFromMapping(g1, g2, []int{0, 1, ged.Deleted}, scenarioCosts(), false)
	require.NoError(t, err)
	require.Equal(t, 4.0+2+3+5+5, list.Cost())
	require.Equal(t, [edit.NumKinds]int{edit.AddNode: 1, edit.DeleteNode: 1, edit.AddEdge: 2, edit.DeleteEdge: 1}, list.CountByKind())

	out, err := list.Apply(g1)
	require.NoError(t, err)
	require.True(t, iso.Isomorphic(out, g2, iso.WithLabels(false)))

	for name, m := range map[string][]int{
		"short":        {0, 1},
		"out of range": {0, 1, 3},
		"negative":     {0, 1, -5},
		"repeated":     {0, 1, 1},
	} {
		_, err = ged.MappingCost(g1, g2, m, scenarioCosts(), false)
		assert.ErrorIs(t, err, ged.ErrInvalidMapping, name)
	}
	_, err = ged.MappingCost(g1, g2, []int{0, 1, 2}, scenarioCosts(), true)
	assert.ErrorIs(t, err, costmodel.ErrMissingCost)
}

func TestMappingCost_RelabelOnlyWhenEnabled(t *testing.T) {
	g1 := builder.MustStructure("g1", false, []string{"a"}, nil)
	g2 := builder.MustStructure("g2", false, []string{"b"}, nil)
	costs := scenarioCosts()

	d, err := ged.MappingCost(g1, g2, []int{0}, costs, false)
	require.NoError(t, err)
	require.Zero(t, d)

	costs[edit.RelabelNode] = 1.5
	list, err := ged.EditListFromMapping(g1, g2, []int{0}, costs, true)
	require.NoError(t, err)
	require.Equal(t, []edit.Operation{edit.NewRelabelNode(0, "b", 1.5)}, list.Operations())
}

func TestHausdorff_StrictNeverReusesTargets(t *testing.T) {
	// two source nodes labeled "a" and a single target "a"
	g1 := builder.MustStructure("g1", false, []string{"a", "a"}, nil)
	g2 := builder.MustStructure("g2", false, []string{"a"}, nil)
	costs := scenarioCosts()
	costs[edit.RelabelNode] = 1
	opts := ged.DefaultOptions()
	opts.Relabel = true

	loose, err := ged.NewHausdorff(costs, opts)
	require.NoError(t, err)
	d, err := loose.Similarity(g1, g2)
	require.NoError(t, err)
	require.Zero(t, d, "both sources pick the same target")

	opts.Strict = true
	strict, err := ged.NewHausdorff(costs, opts)
	require.NoError(t, err)
	d, err = strict.Similarity(g1, g2)
	require.NoError(t, err)
	require.Equal(t, 2.0, d, "second source is deleted")
	require.Equal(t, []edit.Operation{edit.NewDeleteNode(1, 2)}, strict.EditList().DeletedNodes())

	// the estimate is one-sided
	back, err := strict.Similarity(g2, g1)
	require.NoError(t, err)
	require.Equal(t, 3.0, back)
}

func TestHausdorff_Components(t *testing.T) {
	// an edge a-b against a lone "a": both sources match the target by label,
	// but each carries one surplus edge end
	g1 := builder.MustStructure("g1", false, []string{"a", "b"}, []builder.EdgeSpec{builder.E(0, 1)})
	g2 := builder.MustStructure("g2", false, []string{"a"}, nil)

	tests := []struct {
		name        string
		nodes, edge bool
		want        float64
	}{
		{"nodes only", true, false, 0},
		{"edges only", false, true, 4},
		{"both", true, true, 4},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			opts := ged.DefaultOptions()
			opts.NodeCosts, opts.EdgeCosts = tt.nodes, tt.edge
			h, err := ged.NewHausdorff(scenarioCosts(), opts)
			require.NoError(t, err)
			d, err := h.Similarity(g1, g2)
			require.NoError(t, err)
			require.Equal(t, tt.want, d)
			require.Equal(t, d, h.EditList().Cost())
		})
	}
}

func TestHausdorff_DependsOnDirection(t *testing.T) {
	one := builder.MustStructure("one", false, []string{"a"}, nil)
	two := builder.MustStructure("two", false, []string{"a", "a"}, nil)

	tests := []struct {
		name   string
		g1, g2 *core.Graph
		want   float64
	}{
		{"unpicked target is inserted", one, two, 3},
		{"sources share the target", two, one, 0},
	}
	h, err := ged.NewHausdorff(scenarioCosts(), ged.DefaultOptions())
	require.NoError(t, err)
	for _, tt := range tests {
		d, err := h.Similarity(tt.g1, tt.g2)
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, d, tt.name)
	}
}

func TestHausdorff_EdgeWitnessHasNoEndpoints(t *testing.T) {
	g1 := builder.MustStructure("g1", false, []string{"a"}, nil)
	g2 := builder.MustStructure("g2", false, []string{"a", "b"}, []builder.EdgeSpec{builder.E(0, 1)})
	costs := scenarioCosts()
	costs[edit.DeleteNode] = 9
	h, err := ged.NewHausdorff(costs, ged.DefaultOptions())
	require.NoError(t, err)
	_, err = h.Similarity(g1, g2)
	require.NoError(t, err)

	added := h.EditList().AddedEdges()
	require.NotEmpty(t, added)
	for _, op := range added {
		from, to := op.Endpoints()
		assert.Equal(t, edit.NoID, from)
		assert.Equal(t, edit.NoID, to)
	}
}

func TestLowerBound_CountsDifferences(t *testing.T) {
	g1 := builder.MustStructure("g1", true, []string{"a", "b", "c"}, []builder.EdgeSpec{builder.E(0, 1)})
	g2 := builder.MustStructure("g2", true, []string{"a", "d"}, []builder.EdgeSpec{builder.E(0, 1), builder.E(1, 0), builder.E(1, 1)})
	costs := scenarioCosts()
	costs[edit.RelabelNode] = 1
	opts := ged.DefaultOptions()
	opts.Relabel = true

	lb, err := ged.NewLowerBound(costs, opts)
	require.NoError(t, err)
	d, err := lb.Similarity(g1, g2)
	require.NoError(t, err)
	// one node deleted, two edges added, one unavoidable relabel
	require.Equal(t, 2.0+5+5+1, d)
	require.Equal(t, [edit.NumKinds]int{edit.DeleteNode: 1, edit.AddEdge: 2, edit.RelabelNode: 1}, lb.EditList().CountByKind())

	x, err := ged.NewExact(costs, opts)
	require.NoError(t, err)
	exact, err := x.Similarity(g1, g2)
	require.NoError(t, err)
	require.LessOrEqual(t, d, exact)
}

func TestSimple_RandomizeIsReproducible(t *testing.T) {
	opts := ged.DefaultOptions()
	opts.Randomize = true
	opts.Seed = 7
	s1, err := ged.NewSimple(scenarioCosts(), opts)
	require.NoError(t, err)
	s2, err := ged.NewSimple(scenarioCosts(), opts)
	require.NoError(t, err)

	for seed := int64(0); seed < 10; seed++ {
		g1, g2 := randomPair(t, seed, false)
		d1 := similarity(t, s1, g1, g2)
		d2 := similarity(t, s2, g1, g2)
		require.Equal(t, d1, d2)
		require.Equal(t, s1.EditList().Operations(), s2.EditList().Operations())
		require.Zero(t, similarity(t, s1, g1, g1))
	}
}

func TestLogger_ReceivesSearchStats(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.Out = &buf
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	opts := ged.DefaultOptions()
	opts.Logger = logger
	x, err := ged.NewExact(scenarioCosts(), opts)
	require.NoError(t, err)
	g1, g2 := randomPair(t, 3, true)
	_, err = x.Similarity(g1, g2)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "engine=exact")
	require.Contains(t, out, "exact search finished")
}
