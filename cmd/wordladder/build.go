package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/rank"
)

func (a *app) buildGraphCmd() *cobra.Command {
	var (
		words    string
		output   string
		length   int
		directed bool
	)

	cmd := &cobra.Command{
		Use:   "build-graph",
		Short: "Build the one-edit word graph from a word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("words") {
				words = a.cfg.WordsPath
			}
			if !cmd.Flags().Changed("output") {
				output = a.cfg.GraphPath
			}
			if words == "" {
				return errors.New("build-graph: no word list (set --words or words_path)")
			}

			list, err := builder.LoadWords(words)
			if err != nil {
				return err
			}
			var opts []builder.Option
			if length > 0 {
				opts = append(opts, builder.WithTargetLength(length))
			}
			if directed {
				opts = append(opts, builder.WithDirected())
			}
			g, err := builder.FromWords(list, opts...)
			if err != nil {
				return err
			}
			if err = g.SaveFile(output); err != nil {
				return err
			}
			a.logger.Info("graph written",
				"command", "build-graph",
				"path", output,
				"vertices", g.VertexCount(),
				"edges", g.EdgeCount())

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&words, "words", "w", "", "word list, one word per line")
	fl.StringVarP(&output, "output", "o", "", "graph JSON output file")
	fl.IntVarP(&length, "length", "l", 0, "keep only words of this many letters (0 keeps all)")
	fl.BoolVar(&directed, "directed", false, "store each edge once, from the smaller word")

	return cmd
}

func (a *app) rankWordsCmd() *cobra.Command {
	var (
		output string
		length int
	)

	cmd := &cobra.Command{
		Use:   "rank-words DIR",
		Short: "Build a word rank table from the *.txt samples in DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("output") {
				output = a.cfg.RanksPath
			}

			counts, err := rank.CountDir(cmd.Context(), args[0], length)
			if err != nil {
				return err
			}
			table := counts.Normalize()
			if err = table.SaveFile(output); err != nil {
				return err
			}
			a.logger.Info("rank table written",
				"command", "rank-words",
				"path", output,
				"words", table.Len(),
				"samples_total", counts.Total)

			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&output, "output", "o", "", "rank table JSON output file")
	fl.IntVarP(&length, "length", "l", 5, "count only words of this many letters")

	return cmd
}
