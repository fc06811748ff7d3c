// Package wordladder generates ranked word ladder puzzles.
//
// A word ladder is a sequence of distinct words in which every adjacent pair
// differs by exactly one letter. Puzzles are walked randomly over a graph of
// one-edit neighbors, scored by how familiar their words are and by how far
// apart the two endpoints lie, and emitted as a ranked batch.
//
// Packages:
//
//	core/       adjacency-list word graph, JSON persistence
//	builder/    word list to graph (wildcard bucketing)
//	dfs/        randomized fixed-length path walker (restart or backtrack)
//	bfs/        bounded reachability, used to pre-screen start words
//	ladder/     word distance, sequence validation, hardness and rank scoring
//	rank/       word frequency tables built from text samples
//	generator/  batch orchestration with metrics and structured logging
//	export/     CSV output
//	config/     YAML run configuration
//	cmd/wordladder  CLI: build-graph, rank-words, generate, walk
//
// Typical pipeline:
//
//	g, _ := builder.FromWords(words, builder.WithTargetLength(5))
//	gen, _ := generator.New(g, table, generator.Config{
//		NumberOfSequences: 20,
//		IntermediarySteps: 3,
//		MinHardness:       1,
//	}, generator.WithSeed(42))
//	ladders, _ := gen.Generate(ctx, g.Vertices())
//	_ = export.WriteCSV(os.Stdout, generator.Records(ladders, " "))
package wordladder
