package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dfs"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/rank"
)

var (
	// ErrGraphNil is returned when New receives a nil graph.
	ErrGraphNil = errors.New("generator: graph is nil")

	// ErrInsufficientWords indicates the start-word pool ran out before the
	// target number of ladders was collected.
	ErrInsufficientWords = errors.New("generator: insufficient start words")
)

// defaultSeed seeds the RNG when none is injected.
const defaultSeed int64 = 1

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the RNG used for start-word draws and walks. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(g *Generator) {
		g.rng = r
	}
}

// WithSeed seeds a new RNG for start-word draws and walks.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the structured logger. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMetrics sets the Prometheus collectors. Nil keeps unregistered ones.
func WithMetrics(m *Metrics) Option {
	return func(g *Generator) {
		if m != nil {
			g.metrics = m
		}
	}
}

// WithWalkOptions passes extra options to every dfs.RandomPath call. The
// generator's RNG always overrides any RNG set here.
func WithWalkOptions(opts ...dfs.Option) Option {
	return func(g *Generator) {
		g.walkOpts = append(g.walkOpts, opts...)
	}
}

// WithReachabilityFilter skips start words whose reachable component holds
// fewer vertices than the ladder length, without walking them.
func WithReachabilityFilter() Option {
	return func(g *Generator) {
		g.reachFilter = true
	}
}

// Generator collects ranked ladders from one graph and rank table.
type Generator struct {
	graph   *core.Graph
	table   rank.Table
	average float64
	cfg     Config

	rng         *rand.Rand
	logger      *slog.Logger
	metrics     *Metrics
	walkOpts    []dfs.Option
	reachFilter bool
	validator   *ladder.Validator
}

// New validates cfg and prepares a Generator. The corpus average rank is
// computed once here.
func New(g *core.Graph, table rank.Table, cfg Config, opts ...Option) (*Generator, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if table == nil {
		table = rank.Table{}
	}

	gen := &Generator{
		graph:   g,
		table:   table,
		average: table.AverageRank(),
		cfg:     cfg,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(gen)
	}
	if gen.rng == nil {
		gen.rng = rand.New(rand.NewSource(defaultSeed))
	}
	if gen.metrics == nil {
		gen.metrics = NewMetrics(nil)
	}
	gen.validator = ladder.NewValidator(gen.logger)

	return gen, nil
}

// AverageRank returns the corpus average used for missing-word penalties.
func (gen *Generator) AverageRank() float64 { return gen.average }

// Generate draws start words from pool until Config.NumberOfSequences valid
// ladders are collected, then returns them sorted by rank descending and
// filtered by hardness. Duplicate pool entries are drawn once.
//
// Errors:
//   - ErrInsufficientWords when the pool is exhausted first.
//   - ctx.Err() when ctx is done between attempts.
//   - unexpected walker errors (e.g. a dangling neighbor), wrapped.
func (gen *Generator) Generate(ctx context.Context, pool []string) ([]ladder.RankedLadder, error) {
	began := time.Now()
	words := uniqueSorted(pool)
	steps := gen.cfg.Steps()
	target := gen.cfg.NumberOfSequences
	collected := make([]ladder.RankedLadder, 0, target)
	drawn := 0

	walkOpts := append(append([]dfs.Option{}, gen.walkOpts...), dfs.WithRand(gen.rng))

	for len(collected) < target {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("%w: collected %d of %d ladders after %d draws",
				ErrInsufficientWords, len(collected), target, drawn)
		}

		// 1. Draw without replacement
		i := gen.rng.Intn(len(words))
		start := words[i]
		words[i] = words[len(words)-1]
		words = words[:len(words)-1]
		drawn++

		// 2. Optional reachability pre-check
		if gen.reachFilter {
			reach, err := bfs.Reach(gen.graph, start, steps)
			if errors.Is(err, core.ErrUnknownVertex) {
				gen.metrics.attempt(OutcomeUnknown)
				gen.logger.Debug("start word not in graph", "word", start)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("generator: reach %q: %w", start, err)
			}
			if reach.Count() < steps {
				gen.metrics.attempt(OutcomeUnreachable)
				gen.logger.Debug("component too small", "word", start, "reachable", reach.Count())
				continue
			}
		}

		// 3. Walk
		res, err := dfs.RandomPath(gen.graph, start, steps, walkOpts...)
		if res != nil {
			gen.metrics.restarts.Observe(float64(res.Restarts))
		}
		switch {
		case errors.Is(err, dfs.ErrWalkExhausted):
			gen.metrics.attempt(OutcomeExhausted)
			gen.logger.Debug("walk exhausted", "word", start, "restarts", res.Restarts)
			continue
		case errors.Is(err, core.ErrUnknownVertex):
			gen.metrics.attempt(OutcomeUnknown)
			gen.logger.Debug("start word not in graph", "word", start)
			continue
		case err != nil:
			return nil, fmt.Errorf("generator: walk %q: %w", start, err)
		}

		// 4. Validate and score
		if err = gen.validator.Check(res.Path); err != nil {
			gen.metrics.attempt(OutcomeInvalid)
			continue
		}
		collected = append(collected, ladder.Score(res.Path, gen.table, gen.average))
		gen.metrics.attempt(OutcomeSuccess)
	}

	// 5. Rank and filter
	ladder.SortByRank(collected)
	kept := ladder.FilterHardness(collected, gen.cfg.MinHardness)
	gen.metrics.filtered.Add(float64(len(collected) - len(kept)))
	gen.metrics.kept.Set(float64(len(kept)))

	gen.logger.Info("batch generated",
		"collected", len(collected),
		"kept", len(kept),
		"draws", drawn,
		"steps", steps,
		"elapsed", time.Since(began))

	return kept, nil
}

// uniqueSorted copies pool without duplicates or empty strings, sorted so
// that seeded draws are reproducible.
func uniqueSorted(pool []string) []string {
	seen := make(core.Set, len(pool))
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if w == "" || seen.Has(w) {
			continue
		}
		seen.Add(w)
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
