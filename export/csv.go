// Package export writes generated ladder batches to tabular files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/wordladder/generator"
)

// Header is the CSV column order.
var Header = []string{"start", "end", "sequence", "rank", "hardness"}

// WriteCSV writes a header row followed by one row per record.
// Ranks use the shortest float representation that round-trips.
func WriteCSV(w io.Writer, records []generator.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, r := range records {
		row := []string{
			r.Start,
			r.End,
			r.Sequence,
			strconv.FormatFloat(r.Rank, 'g', -1, 64),
			strconv.Itoa(r.Hardness),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}

	return nil
}

// WriteFile writes records as CSV to path, truncating any existing file.
func WriteFile(path string, records []generator.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %q: %w", path, err)
	}
	if err = WriteCSV(f, records); err != nil {
		_ = f.Close()

		return err
	}

	return f.Close()
}
