// Package dfs implements the randomized depth-first path walker that turns a
// start word into a word ladder of an exact length.
//
// What:
//
//   - RandomPath(g, start, steps, opts...): find one path of exactly `steps`
//     distinct vertices beginning at start, each vertex adjacent to the
//     previous one, or report ErrWalkExhausted.
//   - StrategyRestart (default): randomized DFS that pushes every shuffled
//     candidate onto a stack and, on a dead end, discards the whole attempt
//     and starts again from `start`. A coarse progress guard counts how often
//     the bottom of the stack is `start` again; when the count reaches the
//     restart budget (default 2) the walk gives up.
//   - StrategyBacktrack: explicit choice-point stack; a dead end pops back to
//     the nearest vertex with untried candidates instead of restarting. It
//     succeeds strictly more often than StrategyRestart but produces a
//     different output distribution. Bounded by an expansion budget.
//
// Why:
//   - The branching and cycle structure of a word graph is unknown ahead of
//     time; a naive DFS can wander into pockets too small for the requested
//     length. Both strategies terminate: within one attempt the visited set
//     only grows, and across attempts the budgets cap total work.
//
// Randomness:
//
//   - Candidate order is drawn from an injected *rand.Rand (WithRand,
//     WithSeed). With neither, a fixed default seed is used so that runs are
//     reproducible; the global math/rand source is never touched.
//
// Complexity:
//
//   - One attempt: Time O(steps · d log d), Memory O(V) worst case for the stack.
//   - StrategyBacktrack: Time O(budget · d log d).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrInvalidSteps         steps < 1
//   - ErrStartVertexNotFound  start not in graph (wraps core.ErrUnknownVertex)
//   - ErrWalkExhausted        restart or expansion budget spent without a path
package dfs
