// Package generator produces batches of ranked word ladders.
//
// A Generator draws start words from a pool without replacement, walks each
// one with dfs.RandomPath for Config.Steps() vertices, validates the path,
// scores it, and collects ladders until Config.NumberOfSequences are found.
// The batch is then sorted by rank (descending, stable) and filtered to
// ladders whose hardness exceeds Config.MinHardness.
//
// Failure handling:
//
//   - dfs.ErrWalkExhausted, unknown start words and invalid sequences are
//     recovered by drawing the next start word.
//   - Running out of start words before the target count returns
//     ErrInsufficientWords.
//
// A Generator is single-threaded: the graph, the rank table and the RNG are
// owned by the calling goroutine for the duration of Generate.
package generator
