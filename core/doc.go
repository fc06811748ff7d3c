// Package core provides the in-memory word adjacency graph that every other
// package walks, scores and persists.
//
// A Graph G = (V,E) maps each word (vertex) to the list of words reachable by
// a single edit (its neighbors):
//
//   - Vertices are opaque, case-sensitive strings; equality is by content.
//   - Neighbor lists are multisets: AddEdge(a,b) twice stores b twice.
//     Readers de-duplicate (UnvisitedNeighbors, HasUnvisitedNeighbors).
//   - Isolated vertices are valid and carry an empty neighbor list.
//   - Bidirectional construction (AddEdge(a,b,true)) mirrors every edge;
//     the graph itself does not enforce symmetry.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(word string) error            // O(1), resets neighbors to empty
//	AddVertices(words ...string) error      // O(k)
//	HasVertex(word string) bool             // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string, bidirectional bool) error // O(1) amortized
//
//	// Query
//	Neighbors(word string) ([]string, error)                        // O(d)
//	HasUnvisitedNeighbors(word string, visited Set) (bool, error)   // O(d)
//	UnvisitedNeighbors(word string, visited Set) ([]string, error)  // O(d log d)
//	Vertices() []string                                             // O(V log V)
//	VertexCount() int, EdgeCount() int                              // O(1), O(V)
//
//	// Ingestion & persistence
//	FromAdjacency(map[string][]string) *Graph
//	Adjacency() map[string][]string
//	ReadJSON / WriteJSON / LoadFile / SaveFile
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length word
//	ErrUnknownVertex  – lookup of a word that was never added
//
// A Graph is loaded once per process and then treated as read-only; it is
// not safe for concurrent mutation.
package core
