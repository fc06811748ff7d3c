// Package dfs defines types and options for the randomized path walker,
// including strategy selection, budgets, RNG injection and visit hooks.
package dfs

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wordladder/core"
)

// Strategy selects how the walker recovers from a dead end.
type Strategy int

const (
	// StrategyRestart discards the attempt and starts over from the start vertex.
	StrategyRestart Strategy = iota
	// StrategyBacktrack returns to the nearest choice point with untried candidates.
	StrategyBacktrack
)

// String returns "restart", "backtrack" or "unknown".
func (s Strategy) String() string {
	switch s {
	case StrategyRestart:
		return "restart"
	case StrategyBacktrack:
		return "backtrack"
	default:
		return "unknown"
	}
}

// ParseStrategy maps "restart"/"backtrack" (or "") to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "restart":
		return StrategyRestart, nil
	case "backtrack":
		return StrategyBacktrack, nil
	default:
		return StrategyRestart, fmt.Errorf("dfs: unknown strategy %q", s)
	}
}

// Defaults.
const (
	// DefaultRestartBudget is the restart count at which StrategyRestart gives up.
	// The initial pass counts as the first restart, so the default allows one
	// complete attempt.
	DefaultRestartBudget = 2

	// DefaultExpansionBudget caps vertex expansions for StrategyBacktrack.
	DefaultExpansionBudget = 10000

	// defaultSeed seeds the RNG when none is injected.
	defaultSeed int64 = 1
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to RandomPath.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start word is not in the graph.
	// It wraps core.ErrUnknownVertex, so errors.Is matches either.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start vertex not found: %w", core.ErrUnknownVertex)

	// ErrInvalidSteps indicates a requested path length below 1.
	ErrInvalidSteps = errors.New("dfs: steps must be at least 1")

	// ErrWalkExhausted indicates the walker spent its budget without finding a
	// path of the requested length. Callers usually retry with another start.
	ErrWalkExhausted = errors.New("dfs: walk exhausted")
)

// Option configures optional behavior of RandomPath.
type Option func(*WalkOptions)

// WalkOptions holds configurable parameters for one RandomPath call.
type WalkOptions struct {
	// Rand orders candidates. Nil means a fixed default seed.
	Rand *rand.Rand

	// Strategy picks dead-end recovery. Default StrategyRestart.
	Strategy Strategy

	// RestartBudget is the restart count at which StrategyRestart fails.
	RestartBudget int

	// ExpansionBudget caps vertex expansions under StrategyBacktrack.
	ExpansionBudget int

	// OnVisit, if non-nil, is invoked each time a vertex is appended to the path.
	OnVisit func(word string)
}

// DefaultOptions returns WalkOptions with:
//   - no RNG (resolved to a fixed seed)
//   - StrategyRestart
//   - RestartBudget = DefaultRestartBudget
//   - ExpansionBudget = DefaultExpansionBudget
//   - no visit hook
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Strategy:        StrategyRestart,
		RestartBudget:   DefaultRestartBudget,
		ExpansionBudget: DefaultExpansionBudget,
	}
}

// WithRand sets the RNG used to shuffle candidates. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dfs: WithRand(nil)")
	}
	return func(o *WalkOptions) {
		o.Rand = r
	}
}

// WithSeed creates a new seeded RNG for the walk.
func WithSeed(seed int64) Option {
	return func(o *WalkOptions) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithStrategy selects the dead-end recovery strategy.
func WithStrategy(s Strategy) Option {
	return func(o *WalkOptions) {
		o.Strategy = s
	}
}

// WithRestartBudget sets the restart count at which StrategyRestart fails.
// Panics if n < 2, since the initial pass already counts as one restart.
func WithRestartBudget(n int) Option {
	if n < 2 {
		panic("dfs: WithRestartBudget(n<2)")
	}
	return func(o *WalkOptions) {
		o.RestartBudget = n
	}
}

// WithExpansionBudget caps vertex expansions for StrategyBacktrack.
// Panics if n < 1.
func WithExpansionBudget(n int) Option {
	if n < 1 {
		panic("dfs: WithExpansionBudget(n<1)")
	}
	return func(o *WalkOptions) {
		o.ExpansionBudget = n
	}
}

// WithOnVisit installs a hook called for every vertex appended to the path.
func WithOnVisit(fn func(word string)) Option {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WalkResult captures the outcome of one RandomPath call.
type WalkResult struct {
	// Path is the found ladder (first element = start), or nil on failure.
	Path []string

	// Restarts counts how often the walk was back at a fresh state
	// (StrategyRestart only; the initial pass counts as one).
	Restarts int

	// Expansions counts vertices appended to the path across all attempts.
	Expansions int

	// Childless records vertices found to be dead ends given what had been
	// visited at the time. Informational only; it never prunes later attempts.
	Childless core.Set
}
