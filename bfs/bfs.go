// Package bfs provides bounded breadth-first reachability over a core.Graph.
//
// Reach explores vertices in increasing hop distance from a start word and
// stops once `limit` distinct vertices are known. The generator uses it to
// skip start words whose component cannot hold a ladder of the requested
// length, and the CLI uses it to explain failed walks.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Reach.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates the start word is not in the graph.
	ErrStartVertexNotFound = fmt.Errorf("bfs: start vertex not found: %w", core.ErrUnknownVertex)
)

// ReachResult reports the vertices discovered by Reach.
type ReachResult struct {
	// Order lists vertices in discovery order, start first.
	Order []string

	// Depth maps each discovered vertex to its hop distance from start.
	Depth map[string]int

	// Truncated is true when exploration stopped at the limit with vertices
	// still queued.
	Truncated bool
}

// Count returns the number of discovered vertices.
func (r *ReachResult) Count() int { return len(r.Order) }

// Reach discovers up to limit vertices reachable from start (limit <= 0
// means no limit). Duplicate neighbor entries are ignored.
//
// Complexity: Time O(V'+E'), Memory O(V') over the explored subgraph.
func Reach(g *core.Graph, start string, limit int) (*ReachResult, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	// 2. Seed the queue
	res := &ReachResult{
		Order: []string{start},
		Depth: map[string]int{start: 0},
	}
	queue := []string{start}

	// 3. Expand level by level until the limit is reached
	for len(queue) > 0 {
		if limit > 0 && len(res.Order) >= limit {
			res.Truncated = true
			break
		}
		v := queue[0]
		queue = queue[1:]

		nbs, err := g.Neighbors(v)
		if err != nil {
			return res, fmt.Errorf("bfs: Neighbors(%q): %w", v, err)
		}
		for _, nb := range nbs {
			if _, seen := res.Depth[nb]; seen {
				continue
			}
			res.Depth[nb] = res.Depth[v] + 1
			res.Order = append(res.Order, nb)
			queue = append(queue, nb)
			if limit > 0 && len(res.Order) >= limit {
				break
			}
		}
	}

	return res, nil
}
