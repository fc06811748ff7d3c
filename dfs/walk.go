package dfs

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/wordladder/core"
)

// pathWalker encapsulates state during one RandomPath call.
type pathWalker struct {
	graph *core.Graph
	opts  WalkOptions
	start string
	steps int
	res   *WalkResult
}

// RandomPath walks g from start and returns a path of exactly steps distinct
// vertices, each adjacent to the previous one.
//
// On budget exhaustion the returned result carries a nil Path together with
// the walk diagnostics, and the error is ErrWalkExhausted.
func RandomPath(g *core.Graph, start string, steps int, opts ...Option) (*WalkResult, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if steps < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSteps, steps)
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	// 2. Apply options
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}
	if wopts.Rand == nil {
		wopts.Rand = rand.New(rand.NewSource(defaultSeed))
	}

	w := &pathWalker{
		graph: g,
		opts:  wopts,
		start: start,
		steps: steps,
		res:   &WalkResult{Childless: make(core.Set)},
	}

	// 3. Dispatch on strategy
	var err error
	switch wopts.Strategy {
	case StrategyBacktrack:
		err = w.backtrack()
	default:
		err = w.restart()
	}

	return w.res, err
}

// restart runs the stack walk that starts over from w.start on every dead end.
func (w *pathWalker) restart() error {
	stack := []string{w.start}
	visited := make(core.Set)
	path := make([]string, 0, w.steps)

	for len(path) < w.steps {
		// 1. Progress guard: the bottom of the stack is start only at the
		//    beginning of an attempt.
		if stack[0] == w.start {
			w.res.Restarts++
		}
		if w.res.Restarts >= w.opts.RestartBudget {
			return fmt.Errorf("%w: %q after %d restarts", ErrWalkExhausted, w.start, w.res.Restarts)
		}

		// 2. Pop, mark visited, extend the path
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited.Add(v)
		path = append(path, v)
		w.visit(v)
		if len(path) == w.steps {
			break
		}

		// 3. Push shuffled candidates or reset on a dead end
		cands, err := w.graph.UnvisitedNeighbors(v, visited)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", v, err)
		}
		if len(cands) > 0 {
			w.shuffle(cands)
			stack = append(stack, cands...)
			continue
		}
		w.res.Childless.Add(v)
		stack = append(stack[:0], w.start)
		path = path[:0]
		visited = make(core.Set)
	}

	w.res.Path = path

	return nil
}

// visit records an expansion and fires the hook.
func (w *pathWalker) visit(v string) {
	w.res.Expansions++
	if w.opts.OnVisit != nil {
		w.opts.OnVisit(v)
	}
}

// shuffle permutes s in place with the walk's RNG.
func (w *pathWalker) shuffle(s []string) {
	w.opts.Rand.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
