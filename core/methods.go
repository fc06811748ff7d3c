// File: methods.go
// Role: Vertex/edge lifecycle and neighborhood queries.
// Determinism:
//   - Vertices() and UnvisitedNeighbors() return lexicographically sorted slices.
//   - Neighbors() returns the raw list in insertion order.

package core

import "sort"

// AddVertex registers word with an empty neighbor list.
//
// Re-adding an existing vertex resets its neighbors to empty; callers that
// want to keep a vertex's edges must not call AddVertex on it again.
//
// Errors:
//   - ErrEmptyVertexID: if word == "".
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddVertex(word string) error {
	if word == "" {
		return ErrEmptyVertexID
	}
	g.adjacency[word] = []string{}

	return nil
}

// AddVertices registers every word in order, stopping at the first error.
func (g *Graph) AddVertices(words ...string) error {
	for _, w := range words {
		if err := g.AddVertex(w); err != nil {
			return err
		}
	}

	return nil
}

// AddEdge appends b to a's neighbor list, creating a if absent. When
// bidirectional is set, a is appended to b's list as well (b created if absent).
//
// Duplicate calls store duplicate entries; readers de-duplicate.
//
// Errors:
//   - ErrEmptyVertexID: if either endpoint is "".
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddEdge(a, b string, bidirectional bool) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	g.adjacency[a] = append(g.adjacency[a], b)
	if bidirectional {
		g.adjacency[b] = append(g.adjacency[b], a)
	}

	return nil
}

// HasVertex reports whether word was added to the graph.
func (g *Graph) HasVertex(word string) bool {
	_, ok := g.adjacency[word]

	return ok
}

// Neighbors returns a copy of word's raw neighbor list (duplicates included,
// insertion order).
//
// Errors:
//   - ErrUnknownVertex: if word was never added.
func (g *Graph) Neighbors(word string) ([]string, error) {
	nbs, ok := g.adjacency[word]
	if !ok {
		return nil, ErrUnknownVertex
	}
	out := make([]string, len(nbs))
	copy(out, nbs)

	return out, nil
}

// HasUnvisitedNeighbors reports whether word's neighbor set minus visited is
// non-empty. With an empty or nil visited set this is "has any neighbor at
// all", so a fresh vertex with neighbors is never reported as a dead end at
// the start of a walk.
//
// Errors:
//   - ErrUnknownVertex: if word was never added.
//
// Complexity:
//   - Time O(d), Space O(1).
func (g *Graph) HasUnvisitedNeighbors(word string, visited Set) (bool, error) {
	nbs, ok := g.adjacency[word]
	if !ok {
		return false, ErrUnknownVertex
	}
	if len(visited) == 0 {
		return len(nbs) > 0, nil
	}
	for _, nb := range nbs {
		if !visited.Has(nb) {
			return true, nil
		}
	}

	return false, nil
}

// UnvisitedNeighbors returns the de-duplicated neighbors of word that are not
// in visited, sorted lexicographically. The sort gives shuffles a stable input
// so that a seeded RNG reproduces the same walk.
//
// Errors:
//   - ErrUnknownVertex: if word was never added.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) UnvisitedNeighbors(word string, visited Set) ([]string, error) {
	nbs, ok := g.adjacency[word]
	if !ok {
		return nil, ErrUnknownVertex
	}
	seen := make(Set, len(nbs))
	out := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		if visited.Has(nb) || seen.Has(nb) {
			continue
		}
		seen.Add(nb)
		out = append(out, nb)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns all words sorted lexicographically.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adjacency))
	for w := range g.adjacency {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of registered words.
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of stored neighbor entries, duplicates and
// mirrored entries included.
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	n := 0
	for _, nbs := range g.adjacency {
		n += len(nbs)
	}

	return n
}

// Adjacency returns a deep copy of the word → neighbor-list mapping.
// Complexity: O(V+E)
func (g *Graph) Adjacency() map[string][]string {
	out := make(map[string][]string, len(g.adjacency))
	for w, nbs := range g.adjacency {
		cp := make([]string, len(nbs))
		copy(cp, nbs)
		out[w] = cp
	}

	return out
}
