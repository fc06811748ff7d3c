package ladder_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/ladder"
)

// table is a minimal RankLookup.
type table map[string]float64

func (t table) Lookup(w string) (float64, bool) {
	r, ok := t[w]

	return r, ok
}

func TestWordDiff(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"cold", "cold", 0},
		{"cold", "cord", 1},
		{"cold", "warm", 4},
		{"abcde", "abcdg", 1},
		{"cat", "cats", 1},
		{"cat", "dogs", 4},
		{"", "abc", 3},
		{"héllo", "hello", 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ladder.WordDiff(tc.a, tc.b), "%q/%q", tc.a, tc.b)
		assert.Equal(t, tc.want, ladder.WordDiff(tc.b, tc.a), "symmetry %q/%q", tc.b, tc.a)
	}
}

func TestWordDiff_HammingForEqualLength(t *testing.T) {
	words := []string{"stone", "store", "story", "glory", "gloss", "stony"}
	for _, a := range words {
		for _, b := range words {
			hamming := 0
			for i := range a {
				if a[i] != b[i] {
					hamming++
				}
			}
			assert.Equal(t, hamming, ladder.WordDiff(a, b))
		}
	}
}

func TestIsValidSequence_Trivial(t *testing.T) {
	assert.True(t, ladder.IsValidSequence(nil))
	assert.True(t, ladder.IsValidSequence([]string{}))
	assert.True(t, ladder.IsValidSequence([]string{"anything"}))
}

func TestIsValidSequence(t *testing.T) {
	assert.True(t, ladder.IsValidSequence([]string{"cold", "cord", "card", "ward", "warm"}))
	assert.False(t, ladder.IsValidSequence([]string{"cold", "warm"}))
}

func TestViolations_ReportsEveryPair(t *testing.T) {
	got := ladder.Violations([]string{"aaaaa", "bbaaa", "bbaab", "ccccc"})
	require.Len(t, got, 2)
	assert.Equal(t, ladder.Violation{Index: 0, From: "aaaaa", To: "bbaaa", Diff: 2}, got[0])
	assert.Equal(t, 2, got[1].Index)
	assert.Equal(t, "bbaab and ccccc are 5 apart", got[1].String())
}

func TestValidator_LogsAllViolations(t *testing.T) {
	var buf bytes.Buffer
	v := ladder.NewValidator(slog.New(slog.NewTextHandler(&buf, nil)))

	err := v.Check([]string{"aaaaa", "bbaaa", "bbaab", "ccccc"})
	assert.ErrorIs(t, err, ladder.ErrInvalidSequence)
	assert.Contains(t, err.Error(), "2 violations")
	assert.Contains(t, buf.String(), "from=aaaaa to=bbaaa")
	assert.Contains(t, buf.String(), "from=bbaab to=ccccc")

	buf.Reset()
	assert.True(t, v.Valid([]string{"abcde", "abcdf"}))
	assert.Empty(t, buf.String())
}

func TestNewValidator_NilLogger(t *testing.T) {
	v := ladder.NewValidator(nil)
	assert.False(t, v.Valid([]string{"ab", "cd"}))
}

func TestHardness(t *testing.T) {
	assert.Equal(t, 0, ladder.Hardness(nil))
	assert.Equal(t, 0, ladder.Hardness([]string{"abcde"}))
	assert.Equal(t, 2, ladder.Hardness([]string{"abcde", "abcdf", "abcgf"}))
}

func TestRank_MissingWordPenalty(t *testing.T) {
	tbl := table{"abcde": 0.9, "abcdf": 0.1}
	got := ladder.Rank([]string{"abcde", "abcdf", "zzzzz"}, tbl, 0.5)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestRank_MissingScoresStrictlyLower(t *testing.T) {
	full := table{"a": 0.4, "b": 0.6, "c": 0.2}
	partial := table{"a": 0.4, "b": 0.6}
	path := []string{"a", "b", "c"}
	assert.Less(t, ladder.Rank(path, partial, 0.3), ladder.Rank(path, full, 0.3))
}

func TestRank_OrderInvariantWhenAllKnown(t *testing.T) {
	tbl := table{"a": 0.25, "b": 0.5, "c": 1}
	assert.InDelta(t,
		ladder.Rank([]string{"a", "b", "c"}, tbl, 0.1),
		ladder.Rank([]string{"c", "a", "b"}, tbl, 0.1), 1e-12)
	assert.Equal(t, 0.0, ladder.Rank(nil, tbl, 0.1))
}

func TestScoreAndEquality(t *testing.T) {
	words := []string{"abcde", "abcdf", "abgdf"}
	a := ladder.Score(words, table{"abcde": 1}, 0.5)
	words[0] = "mutated"
	assert.Equal(t, "abcde", a.Start(), "Score must copy its input")
	assert.Equal(t, "abgdf", a.End())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 2, a.Hardness)

	b := a
	b.Rank = -7
	assert.True(t, a.Equal(b.Ladder), "equality ignores rank")
	assert.Equal(t, "abcde-abcdf-abgdf", a.Join("-"))

	var empty ladder.Ladder
	assert.Equal(t, "", empty.Start())
	assert.Equal(t, "", empty.End())
}

func TestSortByRank_StableDescending(t *testing.T) {
	mk := func(w string, r float64) ladder.RankedLadder {
		return ladder.RankedLadder{Ladder: ladder.Ladder{Words: []string{w}}, Rank: r}
	}
	ls := []ladder.RankedLadder{mk("a", 0.1), mk("b", 0.5), mk("c", 0.1), mk("d", 0.9)}
	ladder.SortByRank(ls)

	var order []string
	for _, l := range ls {
		order = append(order, l.Start())
	}
	assert.Equal(t, []string{"d", "b", "a", "c"}, order)
}

func TestFilterHardness(t *testing.T) {
	ls := []ladder.RankedLadder{{Hardness: 1}, {Hardness: 2}, {Hardness: 3}, {Hardness: 0}}
	out := ladder.FilterHardness(ls, 1)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].Hardness)
	assert.Equal(t, 3, out[1].Hardness)
}
