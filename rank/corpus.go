package rank

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// ErrNoSamples indicates a corpus directory without any *.txt files.
var ErrNoSamples = errors.New("rank: no sample files")

// punctuation lists the characters CleanWord strips.
const punctuation = `!()-[]{};:'"\,<>./?@#$%^&*_~`

// CleanWord lowercases and trims s and removes punctuation characters.
func CleanWord(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(punctuation, r) {
			return -1
		}

		return r
	}, s)
}

// Counts holds raw word occurrences for one target length.
type Counts struct {
	Words map[string]int
	Total int
}

// merge adds o into c.
func (c *Counts) merge(o Counts) {
	if c.Words == nil {
		c.Words = make(map[string]int, len(o.Words))
	}
	for w, n := range o.Words {
		c.Words[w] += n
	}
	c.Total += o.Total
}

// Normalize converts counts into a Table: each word's relative frequency
// count/Total is min–max scaled into [0,1]. When every word has the same
// frequency, all words score 1.
func (c Counts) Normalize() Table {
	t := make(Table, len(c.Words))
	if c.Total == 0 || len(c.Words) == 0 {
		return t
	}

	lo, hi := 1.0, 0.0
	for w, n := range c.Words {
		f := float64(n) / float64(c.Total)
		t[w] = f
		lo = min(lo, f)
		hi = max(hi, f)
	}
	for w, f := range t {
		if hi == lo {
			t[w] = 1
			continue
		}
		t[w] = (f - lo) / (hi - lo)
	}

	return t
}

// CountFiles counts cleaned words of targetLength runes across the given text
// files. Files are read concurrently; Total counts only target-length words.
func CountFiles(ctx context.Context, paths []string, targetLength int) (Counts, error) {
	var (
		mu  sync.Mutex
		all = Counts{Words: make(map[string]int)}
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, p := range paths {
		g.Go(func() error {
			c, err := countFile(gctx, p, targetLength)
			if err != nil {
				return err
			}
			mu.Lock()
			all.merge(c)
			mu.Unlock()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Counts{}, err
	}

	return all, nil
}

// CountDir counts every *.txt file directly inside dir (non-recursive).
func CountDir(ctx context.Context, dir string, targetLength int) (Counts, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return Counts{}, fmt.Errorf("rank: glob %q: %w", dir, err)
	}
	if len(paths) == 0 {
		return Counts{}, fmt.Errorf("%w in %q", ErrNoSamples, dir)
	}

	return CountFiles(ctx, paths, targetLength)
}

// countFile counts one file.
func countFile(ctx context.Context, path string, targetLength int) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counts{}, fmt.Errorf("rank: open sample %q: %w", path, err)
	}
	defer f.Close()

	c := Counts{Words: make(map[string]int)}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err = ctx.Err(); err != nil {
			return Counts{}, err
		}
		for _, raw := range strings.Fields(sc.Text()) {
			w := CleanWord(raw)
			if utf8.RuneCountInString(w) != targetLength {
				continue
			}
			c.Words[w]++
			c.Total++
		}
	}
	if err = sc.Err(); err != nil {
		return Counts{}, fmt.Errorf("rank: read sample %q: %w", path, err)
	}

	return c, nil
}
