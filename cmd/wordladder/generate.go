package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/config"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/export"
	"github.com/katalvlaran/wordladder/generator"
	"github.com/katalvlaran/wordladder/rank"
)

// stdoutPath selects standard output instead of a file.
const stdoutPath = "-"

// walkFlags are shared by generate and walk.
type walkFlags struct {
	graph         string
	steps         int
	seed          int64
	strategy      string
	restartBudget int
}

func (f *walkFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.graph, "graph", "g", "", "graph JSON file")
	fl.IntVarP(&f.steps, "steps", "s", 0, "intermediary words between start and end")
	fl.Int64Var(&f.seed, "seed", 0, "RNG seed")
	fl.StringVar(&f.strategy, "strategy", "", "dead-end recovery: restart or backtrack")
	fl.IntVar(&f.restartBudget, "restart-budget", 0, "restart count at which a walk gives up (>= 2)")
}

func (f *walkFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("graph") {
		cfg.GraphPath = f.graph
	}
	if fl.Changed("steps") {
		cfg.IntermediarySteps = f.steps
	}
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fl.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fl.Changed("restart-budget") {
		cfg.RestartBudget = f.restartBudget
	}
}

type generateFlags struct {
	walkFlags
	sequences    int
	minHardness  int
	ranks        string
	words        string
	output       string
	separator    string
	metrics      string
	reachability bool
}

func (f *generateFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	f.walkFlags.apply(cmd, cfg)
	fl := cmd.Flags()
	if fl.Changed("sequences") {
		cfg.NumberOfSequences = f.sequences
	}
	if fl.Changed("min-hardness") {
		cfg.MinHardness = f.minHardness
	}
	if fl.Changed("ranks") {
		cfg.RanksPath = f.ranks
	}
	if fl.Changed("words") {
		cfg.WordsPath = f.words
	}
	if fl.Changed("output") {
		cfg.OutputPath = f.output
	}
	if fl.Changed("separator") {
		cfg.Separator = f.separator
	}
	if fl.Changed("metrics") {
		cfg.MetricsPath = f.metrics
	}
	if fl.Changed("reachability") {
		cfg.ReachabilityFilter = f.reachability
	}
}

func (a *app) generateCmd() *cobra.Command {
	var f generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a ranked batch of word ladders and write it as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			return a.runGenerate(cmd, cfg)
		},
	}

	f.register(cmd)
	fl := cmd.Flags()
	fl.IntVarP(&f.sequences, "sequences", "n", 0, "ladders to collect before filtering")
	fl.IntVar(&f.minHardness, "min-hardness", 0, "keep ladders whose hardness exceeds this")
	fl.StringVarP(&f.ranks, "ranks", "r", "", "word rank JSON file")
	fl.StringVarP(&f.words, "words", "w", "", "word list restricting start words (default: every graph word)")
	fl.StringVarP(&f.output, "output", "o", "", `CSV output file, "-" for stdout`)
	fl.StringVar(&f.separator, "separator", "", "separator joining ladder words")
	fl.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics to this textfile")
	fl.BoolVar(&f.reachability, "reachability", false, "skip start words whose component is too small")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, cfg config.Config) error {
	log := a.logger.With("run_id", uuid.NewString(), "command", "generate")

	// 1. Inputs
	g, err := core.LoadFile(cfg.GraphPath)
	if err != nil {
		return err
	}
	table, err := loadRanks(cfg.RanksPath, log)
	if err != nil {
		return err
	}
	pool := g.Vertices()
	if cfg.WordsPath != "" {
		if pool, err = builder.LoadWords(cfg.WordsPath); err != nil {
			return err
		}
	}
	log.Info("inputs loaded",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"ranked_words", table.Len(),
		"pool", len(pool))

	// 2. Generator
	walkOpts, err := cfg.WalkOptions()
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	opts := []generator.Option{
		generator.WithSeed(cfg.Seed),
		generator.WithLogger(log),
		generator.WithMetrics(generator.NewMetrics(reg)),
		generator.WithWalkOptions(walkOpts...),
	}
	if cfg.ReachabilityFilter {
		opts = append(opts, generator.WithReachabilityFilter())
	}
	gen, err := generator.New(g, table, cfg.Config, opts...)
	if err != nil {
		return err
	}

	// 3. Generate, then flush metrics whatever the outcome
	ladders, genErr := gen.Generate(cmd.Context(), pool)
	if cfg.MetricsPath != "" {
		if err = prometheus.WriteToTextfile(cfg.MetricsPath, reg); err != nil {
			log.Warn("metrics not written", "path", cfg.MetricsPath, "error", err)
		}
	}
	if genErr != nil {
		return genErr
	}

	// 4. Export
	records := generator.Records(ladders, cfg.Separator)
	if cfg.OutputPath == "" || cfg.OutputPath == stdoutPath {
		return export.WriteCSV(a.out, records)
	}
	if err = export.WriteFile(cfg.OutputPath, records); err != nil {
		return err
	}
	log.Info("ladders written", "path", cfg.OutputPath, "count", len(records))

	return nil
}

// loadRanks reads the rank table. A missing file yields an empty table, so
// every word scores as unranked.
func loadRanks(path string, log *slog.Logger) (rank.Table, error) {
	if path == "" {
		return rank.Table{}, nil
	}
	table, err := rank.LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("rank table not found, all words unranked", "path", path)

		return rank.Table{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ranks: %w", err)
	}

	return table, nil
}
