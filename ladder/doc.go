// Package ladder validates and scores word ladders.
//
// A ladder is an ordered word sequence in which every consecutive pair is at
// most one edit apart, where "edit" is measured by WordDiff: positional
// character mismatches over the shorter word plus the length difference.
// For equal-length words WordDiff is the Hamming distance.
//
// Scoring:
//
//   - Hardness(path) = WordDiff(first, last). Dissimilar endpoints make a
//     harder puzzle.
//   - Rank(path, table, average) = mean per-word rarity score. Words missing
//     from the table score -2×average, so unknown words pull a ladder down
//     instead of counting as neutral.
//
// RankedLadder values sort by Rank descending (SortByRank, stable) and compare
// equal by their words alone.
package ladder
