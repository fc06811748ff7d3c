// Package rank holds the word rarity table used to score ladders and the
// corpus counter that builds it.
//
// A Table maps a word to a normalized frequency in [0,1], where 1 is the
// most common word of the reference corpus. Tables are produced by counting
// target-length words across plain-text samples (CountFiles, CountDir) and
// min–max normalizing the relative frequencies (Counts.Normalize), then
// persisted as a JSON object (SaveFile / LoadFile).
package rank
