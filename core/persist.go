// File: persist.go
// Role: JSON persistence for Graph ({"word": ["neighbor", ...]}).

package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ReadJSON decodes a word → neighbor-list object from r into a new Graph.
func ReadJSON(r io.Reader) (*Graph, error) {
	var adj map[string][]string
	if err := json.NewDecoder(r).Decode(&adj); err != nil {
		return nil, fmt.Errorf("core: decode graph: %w", err)
	}
	for w := range adj {
		if w == "" {
			return nil, fmt.Errorf("core: decode graph: %w", ErrEmptyVertexID)
		}
	}

	return FromAdjacency(adj), nil
}

// WriteJSON encodes g as a word → neighbor-list object. Keys are emitted in
// sorted order by encoding/json, so output is stable for a given graph.
func (g *Graph) WriteJSON(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(g.adjacency); err != nil {
		return fmt.Errorf("core: encode graph: %w", err)
	}

	return nil
}

// LoadFile reads a graph previously written by SaveFile.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("core: open graph %q: %w", path, err)
	}
	defer f.Close()

	return ReadJSON(f)
}

// SaveFile writes g to path, truncating any existing file.
func (g *Graph) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("core: create graph %q: %w", path, err)
	}
	if err = g.WriteJSON(f); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
