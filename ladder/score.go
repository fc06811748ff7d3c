package ladder

// penaltyFactor scales the corpus average into the score of a missing word.
const penaltyFactor = -2.0

// RankLookup resolves a word's normalized rarity score.
type RankLookup interface {
	Lookup(word string) (float64, bool)
}

// Hardness returns WordDiff between the first and last word of path,
// or 0 for an empty path.
func Hardness(path []string) int {
	if len(path) == 0 {
		return 0
	}

	return WordDiff(path[0], path[len(path)-1])
}

// Rank returns the mean per-word score of path. Words found in table score
// their table value; missing words score penaltyFactor × average. The
// average is computed once by the caller (see rank.Table.AverageRank).
// An empty path ranks 0.
func Rank(path []string, table RankLookup, average float64) float64 {
	if len(path) == 0 {
		return 0
	}

	var sum float64
	for _, w := range path {
		if r, ok := table.Lookup(w); ok {
			sum += r
		} else {
			sum += penaltyFactor * average
		}
	}

	return sum / float64(len(path))
}
