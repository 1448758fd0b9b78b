package costmodel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/edit"
)

func base() costmodel.CostMap {
	return costmodel.CostMap{
		edit.DeleteNode: 2,
		edit.AddNode:    3,
		edit.DeleteEdge: 4,
		edit.AddEdge:    5,
	}
}

func with(k edit.Kind, v float64) costmodel.CostMap {
	m := base()
	m[k] = v

	return m
}

func without(k edit.Kind) costmodel.CostMap {
	m := base()
	delete(m, k)

	return m
}

func TestNew_ExactRequiredSetSucceeds(t *testing.T) {
	m, err := costmodel.New(base(), costmodel.Requirements{})
	require.NoError(t, err)
	require.False(t, m.Relabel())
	require.Equal(t, 2.0, m.Cost(edit.DeleteNode))
	require.Equal(t, 5.0, m.Cost(edit.AddEdge))
	require.Equal(t, base(), m.CostMap())

	m, err = costmodel.New(with(edit.RelabelNode, 1), costmodel.Requirements{Relabel: true})
	require.NoError(t, err)
	require.True(t, m.Relabel())
	require.Equal(t, 1.0, m.Cost(edit.RelabelNode))
}

func TestNew_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		costs costmodel.CostMap
		req   costmodel.Requirements
		want  error
	}{
		{"missing add node", without(edit.AddNode), costmodel.Requirements{}, costmodel.ErrMissingCost},
		{"missing delete edge", without(edit.DeleteEdge), costmodel.Requirements{}, costmodel.ErrMissingCost},
		{"missing relabel", base(), costmodel.Requirements{Relabel: true}, costmodel.ErrMissingCost},
		{"relabel forbidden", with(edit.RelabelNode, 1), costmodel.Requirements{}, costmodel.ErrUnexpectedCost},
		{"negative", with(edit.AddNode, -1), costmodel.Requirements{}, costmodel.ErrInvalidCost},
		{"nan", with(edit.DeleteNode, math.NaN()), costmodel.Requirements{}, costmodel.ErrInvalidCost},
		{"inf", with(edit.AddEdge, math.Inf(1)), costmodel.Requirements{}, costmodel.ErrInvalidCost},
		{"unknown kind", with(edit.Kind(42), 1), costmodel.Requirements{}, costmodel.ErrUnknownKind},
		{"nil map", nil, costmodel.Requirements{}, costmodel.ErrMissingCost},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := costmodel.New(tc.costs, tc.req)
			require.ErrorIs(t, err, tc.want)
		})
	}
	require.Panics(t, func() { costmodel.MustNew(nil, costmodel.Requirements{}) })
}

func TestModel_Helpers(t *testing.T) {
	m := costmodel.MustNew(with(edit.RelabelNode, 7), costmodel.Requirements{Relabel: true})

	require.Equal(t, 0.0, m.NodeSubstitution("a", "a"))
	require.Equal(t, 7.0, m.NodeSubstitution("a", "b"))
	require.Equal(t, 5.0, m.MismatchCost(), "delete+add beats relabel")

	require.Equal(t, 8.0, m.EdgeDiff(3, 1))
	require.Equal(t, 10.0, m.EdgeDiff(0, 2))
	require.Equal(t, 0.0, m.EdgeDiff(2, 2))
	require.Equal(t, 4.0, m.NodeDiff(2, 0))
	require.Equal(t, 3.0, m.NodeDiff(1, 2))

	plain := costmodel.MustNew(base(), costmodel.Requirements{})
	require.Equal(t, 0.0, plain.NodeSubstitution("a", "b"), "labels ignored without relabel")
	require.Zero(t, plain.MismatchCost())
}

func TestParseCostMap(t *testing.T) {
	cm, err := costmodel.ParseCostMap(map[string]float64{
		"delete_node": 2, "ADD_NODE": 3, "delete-edge": 4, "AddEdge": 5,
	})
	require.NoError(t, err)
	require.Equal(t, base(), cm)

	m := costmodel.MustNew(cm, costmodel.Requirements{})
	require.Equal(t, map[string]float64{"DELETE_NODE": 2, "ADD_NODE": 3, "DELETE_EDGE": 4, "ADD_EDGE": 5}, m.Names())

	_, err = costmodel.ParseCostMap(map[string]float64{"SPLIT_NODE": 1})
	require.ErrorIs(t, err, costmodel.ErrUnknownKind)

	_, err = costmodel.ParseCostMap(map[string]float64{"add_node": 1, "ADD_NODE": 2})
	require.ErrorIs(t, err, costmodel.ErrUnexpectedCost)
}
