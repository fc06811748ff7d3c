package dfs

import (
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// frame is one choice point: a vertex on the path and its untried candidates.
type frame struct {
	vertex string
	cands  []string
	next   int
}

// backtrack searches simple paths from w.start with an explicit choice-point
// stack. The visited set always equals the set of vertices on the path.
func (w *pathWalker) backtrack() error {
	visited := make(core.Set, w.steps)
	path := make([]string, 0, w.steps)
	frames := make([]*frame, 0, w.steps)

	// enter appends v to the path and, unless the path is complete, opens a
	// choice point over v's shuffled unvisited neighbors.
	enter := func(v string) (bool, error) {
		visited.Add(v)
		path = append(path, v)
		w.visit(v)
		if len(path) == w.steps {
			return true, nil
		}
		cands, err := w.graph.UnvisitedNeighbors(v, visited)
		if err != nil {
			return false, fmt.Errorf("dfs: neighbors of %q: %w", v, err)
		}
		w.shuffle(cands)
		frames = append(frames, &frame{vertex: v, cands: cands})

		return false, nil
	}

	done, err := enter(w.start)
	if err != nil || done {
		if done {
			w.res.Path = path
		}

		return err
	}

	for len(frames) > 0 {
		if w.res.Expansions >= w.opts.ExpansionBudget {
			return fmt.Errorf("%w: %q after %d expansions", ErrWalkExhausted, w.start, w.res.Expansions)
		}

		top := frames[len(frames)-1]
		if top.next == len(top.cands) {
			// Choice point spent: step back one vertex.
			if len(top.cands) == 0 {
				w.res.Childless.Add(top.vertex)
			}
			frames = frames[:len(frames)-1]
			delete(visited, top.vertex)
			path = path[:len(path)-1]
			continue
		}

		nb := top.cands[top.next]
		top.next++
		if visited.Has(nb) {
			continue
		}
		if done, err = enter(nb); err != nil {
			return err
		}
		if done {
			w.res.Path = path

			return nil
		}
	}

	return fmt.Errorf("%w: %q has no simple path of %d vertices", ErrWalkExhausted, w.start, w.steps)
}
