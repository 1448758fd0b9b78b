package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphedit/costmodel"
	"github.com/katalvlaran/graphedit/ged"
	"github.com/katalvlaran/graphedit/graphio"
	"github.com/katalvlaran/graphedit/iso"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestDistance_ConfigFile(t *testing.T) {
	out, err := run(t, "distance", "--config", "testdata/ged.yaml", "--edits", "--verify",
		"testdata/path.yaml", "testdata/triangle.yaml")
	require.NoError(t, err)
	goldie.New(t).Assert(t, "distance_exact", []byte(out))
}

func TestDistance_FlagsOverrideConfig(t *testing.T) {
	out, err := run(t, "distance", "--config", "testdata/ged.yaml", "-a", "bipartite", "--verify",
		"testdata/path.yaml", "testdata/triangle_shuffled.json")
	require.NoError(t, err)
	assert.Equal(t, "algorithm: bipartite\ndistance: 5\nverified: true\n", out)
}

func TestDistance_Environment(t *testing.T) {
	t.Setenv("GED_ALGORITHM", "simple")
	out, err := run(t, "distance", "--verify", "testdata/path.yaml", "testdata/triangle.yaml")
	require.NoError(t, err)
	assert.Equal(t, "algorithm: simple\ndistance: 1\nverified: true\n", out, "unit costs by default")
}

func TestDistance_Errors(t *testing.T) {
	pair := []string{"testdata/path.yaml", "testdata/triangle.yaml"}

	_, err := run(t, append([]string{"distance", "-a", "beam"}, pair...)...)
	require.ErrorIs(t, err, ged.ErrUnknownAlgorithm)

	_, err = run(t, append([]string{"distance", "--relabel", "--costs", "delete_node=1,add_node=1,delete_edge=1,add_edge=1"}, pair...)...)
	require.ErrorIs(t, err, costmodel.ErrMissingCost)

	_, err = run(t, append([]string{"distance", "--costs", "delete_node=x"}, pair...)...)
	require.ErrorIs(t, err, costmodel.ErrInvalidCost)

	_, err = run(t, append([]string{"distance", "-a", "hausdorff", "--verify"}, pair...)...)
	require.Error(t, err)

	_, err = run(t, "distance", "testdata/path.yaml", "testdata/dangling.yaml")
	require.ErrorIs(t, err, graphio.ErrBadEdge)

	_, err = run(t, "distance", "testdata/path.yaml")
	require.Error(t, err)
}

func TestDistance_EveryAlgorithm(t *testing.T) {
	for _, algo := range ged.Algorithms() {
		out, err := run(t, "distance", "-a", algo.String(), "testdata/path.yaml", "testdata/triangle.yaml")
		require.NoError(t, err, algo.String())
		require.True(t, strings.HasPrefix(out, "algorithm: "+algo.String()+"\n"), out)
	}
}

func TestIso(t *testing.T) {
	out, err := run(t, "iso", "testdata/path.yaml", "testdata/triangle.yaml")
	require.NoError(t, err)
	assert.Equal(t, "isomorphic: false\n", out)

	out, err = run(t, "iso", "--labels", "testdata/triangle.yaml", "testdata/triangle_shuffled.json")
	require.NoError(t, err)
	assert.Equal(t, "isomorphic: true\nmapping: [1 2 0]\n", out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "check", "testdata/triangle.yaml")
	require.NoError(t, err)
	assert.Equal(t, "testdata/triangle.yaml: ok nodes=3 edges=3 self-loops=0 parallel=0 max-degree=2\n", out)

	out, err = run(t, "check", "testdata/path.yaml", "testdata/dangling.yaml")
	require.Error(t, err)
	assert.Contains(t, out, "testdata/dangling.yaml: invalid")
}

func TestRandom(t *testing.T) {
	out, err := run(t, "random", "-n", "4", "-m", "3", "--seed", "2", "-f", "json", "--labels", "a,b")
	require.NoError(t, err)
	g, err := graphio.Decode(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 3, g.EdgeCount())

	again, err := run(t, "random", "-n", "4", "-m", "3", "--seed", "2", "-f", "json", "--labels", "a,b")
	require.NoError(t, err)
	require.Equal(t, out, again, "same seed, same document")

	path := filepath.Join(t.TempDir(), "perm.yaml")
	_, err = run(t, "random", "-n", "4", "-m", "3", "--seed", "2", "--labels", "a,b", "--permute", "-o", path)
	require.NoError(t, err)
	perm, err := graphio.ReadFile(path)
	require.NoError(t, err)
	require.True(t, iso.Isomorphic(g, perm, iso.WithNodeLabels()))

	_, err = run(t, "random", "-f", "toml")
	require.ErrorIs(t, err, graphio.ErrUnknownFormat)
}
