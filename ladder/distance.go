package ladder

// WordDiff returns the edit weight between a and b: the number of differing
// characters over the shorter word's length plus the difference in length.
// Characters are compared as runes.
//
// WordDiff(w, w) == 0 and WordDiff is symmetric.
// Complexity: O(max(len(a), len(b)))
func WordDiff(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	short, long := ra, rb
	if len(short) > len(long) {
		short, long = long, short
	}

	diff := len(long) - len(short)
	for i := range short {
		if short[i] != long[i] {
			diff++
		}
	}

	return diff
}
