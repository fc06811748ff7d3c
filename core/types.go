// Package core defines the word Graph type, the visited Set helper and the
// sentinel errors shared by traversal packages.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided word is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrUnknownVertex indicates a lookup of a word never added to the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")
)

// Set is a word set used for visited/excluded vertices during traversal.
type Set map[string]struct{}

// Add inserts w into the set.
func (s Set) Add(w string) { s[w] = struct{}{} }

// Has reports whether w is in the set. A nil Set contains nothing.
func (s Set) Has(w string) bool {
	_, ok := s[w]

	return ok
}

// Graph is the word adjacency structure.
//
// adjacency[word] holds the raw neighbor list in insertion order, duplicates
// included. A present key with an empty slice is an isolated vertex.
type Graph struct {
	adjacency map[string][]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string][]string)}
}

// FromAdjacency builds a Graph from a word → neighbor-list mapping, the shape
// produced by graph serializers. Neighbors that are not keys themselves are
// registered as isolated vertices so that every referenced word is known.
// The input map is not retained.
// Complexity: O(V+E)
func FromAdjacency(adj map[string][]string) *Graph {
	g := &Graph{adjacency: make(map[string][]string, len(adj))}
	for word, nbs := range adj {
		cp := make([]string, len(nbs))
		copy(cp, nbs)
		g.adjacency[word] = cp
	}
	for _, nbs := range adj {
		for _, nb := range nbs {
			if _, ok := g.adjacency[nb]; !ok {
				g.adjacency[nb] = []string{}
			}
		}
	}

	return g
}
