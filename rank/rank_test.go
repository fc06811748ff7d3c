package rank_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/rank"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestTable_LookupAndAverage(t *testing.T) {
	tbl := rank.Table{"abcde": 0.9, "abcdf": 0.1, "zeros": 0}
	r, ok := tbl.Lookup("abcde")
	assert.True(t, ok)
	assert.Equal(t, 0.9, r)
	_, ok = tbl.Lookup("nope")
	assert.False(t, ok)

	assert.InDelta(t, 0.5, tbl.AverageRank(), 1e-12, "zero entries are excluded")
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 0.0, rank.Table{}.AverageRank())
}

func TestTable_JSONRoundTrip(t *testing.T) {
	tbl := rank.Table{"stone": 1, "store": 0.25}
	var buf bytes.Buffer
	require.NoError(t, tbl.WriteJSON(&buf))

	back, err := rank.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, tbl, back)

	_, err = rank.ReadJSON(bytes.NewBufferString(`{"a":"x"}`))
	assert.Error(t, err)
}

func TestTable_SaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "word_rank.json")
	tbl := rank.Table{"stone": 1}
	require.NoError(t, tbl.SaveFile(path))

	back, err := rank.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tbl, back)

	_, err = rank.LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestCleanWord(t *testing.T) {
	assert.Equal(t, "hello", rank.CleanWord("  Hello!\n"))
	assert.Equal(t, "dont", rank.CleanWord(`"Don't"`))
	assert.Equal(t, "", rank.CleanWord("--"))
}

func TestCountsNormalize(t *testing.T) {
	c := rank.Counts{Words: map[string]int{"stone": 4, "store": 2, "story": 1}, Total: 7}
	tbl := c.Normalize()
	assert.InDelta(t, 1.0, tbl["stone"], 1e-12)
	assert.InDelta(t, 1.0/3.0, tbl["store"], 1e-12)
	assert.InDelta(t, 0.0, tbl["story"], 1e-12)

	flat := rank.Counts{Words: map[string]int{"a": 2, "b": 2}, Total: 4}.Normalize()
	assert.Equal(t, rank.Table{"a": 1, "b": 1}, flat)

	assert.Empty(t, rank.Counts{}.Normalize())
}

func TestCountFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "The stone, the STONE. A store\nstory time\n")
	b := writeFile(t, dir, "b.txt", "stone! cat dog\n")

	c, err := rank.CountFiles(context.Background(), []string{a, b}, 5)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"stone": 3, "store": 1, "story": 1}, c.Words)
	assert.Equal(t, 5, c.Total)

	_, err = rank.CountFiles(context.Background(), []string{filepath.Join(dir, "none.txt")}, 5)
	assert.Error(t, err)
}

func TestCountDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "stone store\n")
	writeFile(t, dir, "skip.md", "stone stone stone\n")

	c, err := rank.CountDir(context.Background(), dir, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Total)

	_, err = rank.CountDir(context.Background(), t.TempDir(), 5)
	assert.ErrorIs(t, err, rank.ErrNoSamples)
}

func TestCountFiles_Canceled(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "a.txt", "stone\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rank.CountFiles(ctx, []string{p}, 5)
	assert.ErrorIs(t, err, context.Canceled)
}
