package dfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/wordladder/dfs"
)

// BenchmarkRandomPath_Restart measures the restart walker on a 20×20 grid.
func BenchmarkRandomPath_Restart(b *testing.B) {
	g := buildGrid(20, 20)
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.RandomPath(g, "10,10", 12, dfs.WithRand(rng))
	}
}

// BenchmarkRandomPath_Backtrack measures the choice-point walker on the same grid.
func BenchmarkRandomPath_Backtrack(b *testing.B) {
	g := buildGrid(20, 20)
	rng := rand.New(rand.NewSource(1))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.RandomPath(g, "10,10", 12, dfs.WithRand(rng), dfs.WithStrategy(dfs.StrategyBacktrack))
	}
}
