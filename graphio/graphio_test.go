package graphio_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphedit/core"
	"github.com/katalvlaran/graphedit/graphio"
	"github.com/katalvlaran/graphedit/iso"
)

func fixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithName("tri"))
	g.AddNode("a")
	g.AddNode("b", core.WithNodeWeight(1.5))
	g.AddNode("c", core.WithNodeType(2), core.WithNodeAge(3))
	for _, e := range []struct {
		from, to int
		label    string
		opts     []core.EdgeOption
	}{
		{0, 1, "", nil},
		{1, 2, "x", nil},
		{2, 0, "", []core.EdgeOption{core.WithEdgeWeight(0.5)}},
	} {
		_, err := g.AddEdge(e.from, e.to, e.label, e.opts...)
		require.NoError(t, err)
	}

	return g
}

func TestEncode_Golden(t *testing.T) {
	gd := goldie.New(t)
	for _, f := range []graphio.Format{graphio.YAML, graphio.JSON} {
		data, err := graphio.Marshal(fixture(t), f)
		require.NoError(t, err)
		gd.Assert(t, "triangle_"+f.String(), data)
	}
}

func TestDecode_KeepsAttributes(t *testing.T) {
	for _, f := range []graphio.Format{graphio.YAML, graphio.JSON} {
		want := fixture(t)
		data, err := graphio.Marshal(want, f)
		require.NoError(t, err)

		got, err := graphio.Decode(strings.NewReader(string(data)))
		require.NoError(t, err, f.String())
		require.Equal(t, want.Name(), got.Name())
		require.Equal(t, want.Nodes(), got.Nodes())
		require.Equal(t, want.Edges(), got.Edges())
	}
}

func TestDecode_FlowStyle(t *testing.T) {
	src := `
directed: true
nodes: [{label: a}, {label: b}]
edges:
  - {from: 1, to: 0, label: back}
  - {from: 1, to: 1}
`
	g, err := graphio.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, g.Directed())
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 2, g.Multiplicity(1, 0)+g.Multiplicity(1, 1))
	require.False(t, g.HasEdge(0, 1))
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want error
	}{
		"empty":        {"", graphio.ErrEmptyDocument},
		"dangling":     {"nodes: [{label: a}]\nedges: [{from: 0, to: 3}]\n", graphio.ErrBadEdge},
		"negative end": {"nodes: [{label: a}]\nedges: [{from: -1, to: 0}]\n", graphio.ErrBadEdge},
	}
	for name, tc := range cases {
		_, err := graphio.Decode(strings.NewReader(tc.src))
		require.ErrorIs(t, err, tc.want, name)
	}

	_, err := graphio.Decode(strings.NewReader("nodes: []\ncolour: red\n"))
	require.Error(t, err, "unknown fields are rejected")
	_, err = graphio.Decode(strings.NewReader("nodes: {"))
	require.Error(t, err)
}

func TestFormats(t *testing.T) {
	for in, want := range map[string]graphio.Format{"yaml": graphio.YAML, "YML": graphio.YAML, " json ": graphio.JSON} {
		got, err := graphio.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := graphio.ParseFormat("toml")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
	_, err = graphio.Marshal(fixture(t), graphio.Format(9))
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)

	require.Equal(t, graphio.JSON, graphio.FormatOf("g.JSON"))
	require.Equal(t, graphio.YAML, graphio.FormatOf("g.yml"))
	require.Equal(t, graphio.YAML, graphio.FormatOf("g"))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"g.yaml", "g.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, graphio.WriteFile(path, fixture(t)))
		got, err := graphio.ReadFile(path)
		require.NoError(t, err)
		require.True(t, iso.Isomorphic(got, fixture(t), iso.WithNodeLabels()))
	}
	_, err := graphio.ReadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestFromGraph_Nil(t *testing.T) {
	require.Equal(t, graphio.Document{}, graphio.FromGraph(nil))
}
