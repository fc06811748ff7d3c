package ladder

import (
	"slices"
	"sort"
	"strings"
)

// Ladder is a validated, ordered word sequence.
type Ladder struct {
	Words []string
}

// Start returns the first word, or "" for an empty ladder.
func (l Ladder) Start() string {
	if len(l.Words) == 0 {
		return ""
	}

	return l.Words[0]
}

// End returns the last word, or "" for an empty ladder.
func (l Ladder) End() string {
	if len(l.Words) == 0 {
		return ""
	}

	return l.Words[len(l.Words)-1]
}

// Len returns the number of words.
func (l Ladder) Len() int { return len(l.Words) }

// Equal reports whether both ladders hold the same word sequence.
func (l Ladder) Equal(o Ladder) bool { return slices.Equal(l.Words, o.Words) }

// Join renders the words separated by sep.
func (l Ladder) Join(sep string) string { return strings.Join(l.Words, sep) }

// RankedLadder is a Ladder with its rarity rank and endpoint hardness.
// Equality ignores the scores.
type RankedLadder struct {
	Ladder
	Rank     float64
	Hardness int
}

// Score builds a RankedLadder for words using table and the corpus average.
// The words slice is copied.
func Score(words []string, table RankLookup, average float64) RankedLadder {
	cp := slices.Clone(words)

	return RankedLadder{
		Ladder:   Ladder{Words: cp},
		Rank:     Rank(cp, table, average),
		Hardness: Hardness(cp),
	}
}

// SortByRank orders ladders by Rank descending; ties keep discovery order.
func SortByRank(ls []RankedLadder) {
	sort.SliceStable(ls, func(i, j int) bool { return ls[i].Rank > ls[j].Rank })
}

// FilterHardness returns the ladders whose Hardness exceeds minHardness, in order.
func FilterHardness(ls []RankedLadder, minHardness int) []RankedLadder {
	out := make([]RankedLadder, 0, len(ls))
	for _, l := range ls {
		if l.Hardness > minHardness {
			out = append(out, l)
		}
	}

	return out
}
