// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// Package builder constructs core.Graph word graphs from word lists.
//
// Every word becomes a vertex; every pair of words at edit weight 1
// (ladder.WordDiff) becomes an edge. Construction is deterministic: words
// are normalized, de-duplicated and processed in sorted order, so the same
// input yields the same neighbor lists.
//
// Algorithm:
//   - Equal length: each word is filed under one wildcard key per position
//     ("st_ne" for "stone" at 2). Two distinct words of equal length share a
//     key iff they differ in exactly that one position, so every bucket is a
//     clique of one-edit neighbors and no pair is emitted twice.
//   - Length ±1: WordDiff compares positions over the shorter word only, so a
//     shorter word is one edit from a longer word iff it is the longer word's
//     prefix. Each word checks its one-rune-shorter prefix.
//
// Complexity:
//   - Time O(N·L + E), Space O(N·L) for N words of length ≤ L and E edges.
//
// Options:
//   - WithTargetLength(n)  keep only words of n runes (no cross-length edges)
//   - WithDirected()       store one-way edges smaller→larger (lexicographic)
//   - WithNormalize(bool)  lowercase + trim input words (default true)
package builder
