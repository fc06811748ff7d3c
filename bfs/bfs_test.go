package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
)

func buildChain() *core.Graph {
	return core.FromAdjacency(map[string][]string{
		"abcde": {"abcdf", "abcdf"},
		"abcdf": {"abcde", "abcdg"},
		"abcdg": {"abcdf"},
		"zzzzz": {},
	})
}

func TestReach_NilGraph(t *testing.T) {
	_, err := bfs.Reach(nil, "a", 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestReach_StartNotFound(t *testing.T) {
	_, err := bfs.Reach(buildChain(), "nope", 0)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
}

func TestReach_Unbounded(t *testing.T) {
	res, err := bfs.Reach(buildChain(), "abcde", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"abcde", "abcdf", "abcdg"}, res.Order)
	assert.Equal(t, map[string]int{"abcde": 0, "abcdf": 1, "abcdg": 2}, res.Depth)
	assert.False(t, res.Truncated)
	assert.Equal(t, 3, res.Count())
}

func TestReach_Limit(t *testing.T) {
	res, err := bfs.Reach(buildChain(), "abcde", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"abcde", "abcdf"}, res.Order)
	assert.True(t, res.Truncated)
}

func TestReach_Isolated(t *testing.T) {
	res, err := bfs.Reach(buildChain(), "zzzzz", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count())
	assert.False(t, res.Truncated)
}
