package generator

import "github.com/katalvlaran/wordladder/ladder"

// DefaultSeparator joins ladder words in Record.Sequence.
const DefaultSeparator = " "

// Record is the tabular export shape of one ranked ladder.
type Record struct {
	Start    string  `json:"start"`
	End      string  `json:"end"`
	Sequence string  `json:"sequence"`
	Rank     float64 `json:"rank"`
	Hardness int     `json:"hardness"`
}

// Records converts ladders to export records, joining words with sep
// (DefaultSeparator when empty). Order is preserved.
func Records(ls []ladder.RankedLadder, sep string) []Record {
	if sep == "" {
		sep = DefaultSeparator
	}
	out := make([]Record, 0, len(ls))
	for _, l := range ls {
		out = append(out, Record{
			Start:    l.Start(),
			End:      l.End(),
			Sequence: l.Join(sep),
			Rank:     l.Rank,
			Hardness: l.Hardness,
		})
	}

	return out
}
