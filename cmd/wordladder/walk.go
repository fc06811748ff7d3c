package main

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dfs"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/rank"
)

func (a *app) walkCmd() *cobra.Command {
	var (
		f     walkFlags
		ranks string
	)

	cmd := &cobra.Command{
		Use:   "walk WORD",
		Short: "Walk one ladder from WORD and print it",
		Long: "Walk one ladder from WORD and print it with its rank and hardness.\n" +
			"When the walk fails, the reachable neighborhood of WORD is reported.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			f.apply(cmd, &cfg)
			if cmd.Flags().Changed("ranks") {
				cfg.RanksPath = ranks
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			g, err := core.LoadFile(cfg.GraphPath)
			if err != nil {
				return err
			}
			table, err := loadRanks(cfg.RanksPath, a.logger)
			if err != nil {
				return err
			}
			opts, err := cfg.WalkOptions()
			if err != nil {
				return err
			}
			opts = append(opts, dfs.WithRand(rand.New(rand.NewSource(cfg.Seed))))

			return a.runWalk(g, table, args[0], cfg.Steps(), cfg.Separator, opts)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&ranks, "ranks", "r", "", "word rank JSON file")

	return cmd
}

func (a *app) runWalk(g *core.Graph, table rank.Table, start string, steps int, sep string, opts []dfs.Option) error {
	log := a.logger.With("command", "walk", "word", start)

	res, err := dfs.RandomPath(g, start, steps, opts...)
	if errors.Is(err, dfs.ErrWalkExhausted) {
		reach, rerr := bfs.Reach(g, start, 0)
		if rerr != nil {
			return rerr
		}
		log.Warn("no ladder found",
			"steps", steps,
			"restarts", res.Restarts,
			"expansions", res.Expansions,
			"childless", len(res.Childless),
			"reachable", reach.Count(),
			"max_depth", maxDepth(reach))
		if reach.Count() < steps {
			return fmt.Errorf("%w: only %d words reachable from %q, need %d",
				err, reach.Count(), start, steps)
		}

		return err
	}
	if err != nil {
		return err
	}

	scored := ladder.Score(res.Path, table, table.AverageRank())
	log.Debug("walk done", "restarts", res.Restarts, "expansions", res.Expansions)
	_, err = fmt.Fprintf(a.out, "%s\trank=%g\thardness=%d\n", scored.Join(sep), scored.Rank, scored.Hardness)

	return err
}

// maxDepth returns the largest hop distance in r.
func maxDepth(r *bfs.ReachResult) int {
	deepest := 0
	for _, d := range r.Depth {
		deepest = max(deepest, d)
	}

	return deepest
}
