package core_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
)

// chain builds abcde — abcdf — abcdg bidirectionally.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("abcde", "abcdf", true))
	require.NoError(t, g.AddEdge("abcdf", "abcdg", true))

	return g
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("", "x", false), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("x", "", true), core.ErrEmptyVertexID)
}

func TestAddVertex_ResetsNeighbors(t *testing.T) {
	g := chain(t)
	require.NoError(t, g.AddVertex("abcdf"))

	nbs, err := g.Neighbors("abcdf")
	require.NoError(t, err)
	assert.Empty(t, nbs)
	// the mirrored entries on the other side are untouched
	nbs, err = g.Neighbors("abcde")
	require.NoError(t, err)
	assert.Equal(t, []string{"abcdf"}, nbs)
}

func TestAddEdge_Directions(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", false))
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("b"), "one-way edge must not create the target")

	require.NoError(t, g.AddEdge("c", "d", true))
	nbs, err := g.Neighbors("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, nbs)
}

func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("nope")
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = g.HasUnvisitedNeighbors("nope", nil)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	_, err = g.UnvisitedNeighbors("nope", nil)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestNeighbors_DuplicatesTolerated(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("a", "b", true))
	require.NoError(t, g.AddEdge("a", "b", true))

	raw, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "b"}, raw)

	uniq, err := g.UnvisitedNeighbors("a", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, uniq)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestHasUnvisitedNeighbors(t *testing.T) {
	g := chain(t)
	require.NoError(t, g.AddVertex("lonely"))

	ok, err := g.HasUnvisitedNeighbors("abcde", nil)
	require.NoError(t, err)
	assert.True(t, ok, "empty visited degrades to any neighbor at all")

	ok, err = g.HasUnvisitedNeighbors("abcde", core.Set{"abcdf": {}})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = g.HasUnvisitedNeighbors("abcdf", core.Set{"abcde": {}})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.HasUnvisitedNeighbors("lonely", core.Set{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnvisitedNeighbors_SortedAndExcluded(t *testing.T) {
	g := core.NewGraph()
	for _, nb := range []string{"d", "b", "c", "b"} {
		require.NoError(t, g.AddEdge("a", nb, true))
	}
	out, err := g.UnvisitedNeighbors("a", core.Set{"c": {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d"}, out)
}

func TestVerticesAndAdjacencyCopy(t *testing.T) {
	g := chain(t)
	assert.Equal(t, []string{"abcde", "abcdf", "abcdg"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())

	adj := g.Adjacency()
	adj["abcde"][0] = "mutated"
	nbs, err := g.Neighbors("abcde")
	require.NoError(t, err)
	assert.Equal(t, []string{"abcdf"}, nbs, "Adjacency must return a deep copy")
}

func TestFromAdjacency_RegistersDanglingNeighbors(t *testing.T) {
	g := core.FromAdjacency(map[string][]string{"a": {"b"}})
	assert.True(t, g.HasVertex("b"))
	nbs, err := g.Neighbors("b")
	require.NoError(t, err)
	assert.Empty(t, nbs)
}

func TestJSONRoundTrip(t *testing.T) {
	g := chain(t)
	var buf bytes.Buffer
	require.NoError(t, g.WriteJSON(&buf))
	assert.JSONEq(t,
		`{"abcde":["abcdf"],"abcdf":["abcde","abcdg"],"abcdg":["abcdf"]}`,
		buf.String())

	back, err := core.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Adjacency(), back.Adjacency())
}

func TestReadJSON_Errors(t *testing.T) {
	_, err := core.ReadJSON(bytes.NewBufferString(`[1,2]`))
	assert.Error(t, err)

	_, err = core.ReadJSON(bytes.NewBufferString(`{"":["a"]}`))
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.json")
	g := chain(t)
	require.NoError(t, g.SaveFile(path))

	back, err := core.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())

	_, err = core.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
