// Command wordladder builds word graphs and rank tables and generates ranked
// word ladder batches from them.
//
//	wordladder build-graph --words words.txt --length 5 --output graph.json
//	wordladder rank-words samples/ --length 5 --output word_rank.json
//	wordladder generate -n 20 --steps 3 --output ladders.csv
//	wordladder walk stone --steps 4
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
