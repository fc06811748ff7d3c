package ladder

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrInvalidSequence indicates a path with at least one adjacent pair more
// than one edit apart.
var ErrInvalidSequence = errors.New("ladder: invalid sequence")

// MaxStepDiff is the largest WordDiff allowed between consecutive words.
const MaxStepDiff = 1

// Violation is one adjacent pair that breaks the ladder invariant.
type Violation struct {
	Index int // position of From in the path
	From  string
	To    string
	Diff  int
}

// String renders the violation for logs and error messages.
func (v Violation) String() string {
	return fmt.Sprintf("%s and %s are %d apart", v.From, v.To, v.Diff)
}

// Violations scans the whole path and returns every adjacent pair whose
// WordDiff exceeds MaxStepDiff, in path order.
func Violations(path []string) []Violation {
	var out []Violation
	for i := 0; i+1 < len(path); i++ {
		if d := WordDiff(path[i], path[i+1]); d > MaxStepDiff {
			out = append(out, Violation{Index: i, From: path[i], To: path[i+1], Diff: d})
		}
	}

	return out
}

// IsValidSequence reports whether every adjacent pair of path is within
// MaxStepDiff. Empty and single-word paths are valid.
func IsValidSequence(path []string) bool {
	return len(Violations(path)) == 0
}

// Validator checks paths and reports every violating pair to its logger.
type Validator struct {
	logger *slog.Logger
}

// NewValidator returns a Validator logging to logger; nil discards.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Validator{logger: logger}
}

// Valid reports whether path is a valid ladder, logging each violation.
func (v *Validator) Valid(path []string) bool {
	return v.Check(path) == nil
}

// Check returns nil for a valid path, or ErrInvalidSequence wrapped with the
// first violation and the total count. All violations are logged.
func (v *Validator) Check(path []string) error {
	bad := Violations(path)
	for _, vi := range bad {
		v.logger.Warn("ladder step too wide",
			"from", vi.From, "to", vi.To, "diff", vi.Diff, "index", vi.Index)
	}
	if len(bad) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %s (%d violations)", ErrInvalidSequence, bad[0], len(bad))
}
