package rank

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Table maps words to normalized rarity scores in [0,1].
type Table map[string]float64

// Lookup returns the score of word and whether it is present.
func (t Table) Lookup(word string) (float64, bool) {
	r, ok := t[word]

	return r, ok
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t) }

// AverageRank returns the mean of all entries with a positive score, or 0
// when there are none. Compute it once per table; it does not change while
// the table is read-only.
func (t Table) AverageRank() float64 {
	var (
		sum float64
		n   int
	)
	for _, r := range t {
		if r > 0 {
			sum += r
			n++
		}
	}
	if n == 0 {
		return 0
	}

	return sum / float64(n)
}

// ReadJSON decodes a word → score object.
func ReadJSON(r io.Reader) (Table, error) {
	t := make(Table)
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("rank: decode table: %w", err)
	}

	return t, nil
}

// WriteJSON encodes t as a word → score object.
func (t Table) WriteJSON(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(map[string]float64(t)); err != nil {
		return fmt.Errorf("rank: encode table: %w", err)
	}

	return nil
}

// LoadFile reads a table written by SaveFile.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rank: open table %q: %w", path, err)
	}
	defer f.Close()

	return ReadJSON(f)
}

// SaveFile writes t to path, truncating any existing file.
func (t Table) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("rank: create table %q: %w", path, err)
	}
	if err = t.WriteJSON(f); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
