// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// words.go — FromWords graph construction and word-list reading.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/wordladder/core"
)

// wildcard marks the free position in a bucket key.
const wildcard = '_'

// FromWords builds a word graph connecting every pair at edit weight 1.
//
// Errors:
//   - ErrNoWords if nothing survives normalization and length filtering.
//   - core errors from vertex/edge insertion, wrapped with context.
func FromWords(words []string, opts ...Option) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1. Normalize, filter, de-duplicate, sort
	uniq := prepare(words, cfg)
	if len(uniq) == 0 {
		return nil, ErrNoWords
	}

	// 2. Register every word so isolated words are valid vertices
	g := core.NewGraph()
	if err := g.AddVertices(uniq...); err != nil {
		return nil, fmt.Errorf("FromWords: %w", err)
	}

	present := make(core.Set, len(uniq))
	for _, w := range uniq {
		present.Add(w)
	}

	// 3. Equal-length neighbors via wildcard buckets, prefix neighbors via lookup
	buckets := make(map[string][]string)
	for _, w := range uniq {
		rs := []rune(w)
		for i := range rs {
			key := bucketKey(rs, i)
			for _, m := range buckets[key] {
				if err := g.AddEdge(m, w, cfg.bidirectional); err != nil {
					return nil, fmt.Errorf("FromWords: AddEdge(%s,%s): %w", m, w, err)
				}
			}
			buckets[key] = append(buckets[key], w)
		}

		if cfg.targetLength > 0 || len(rs) < 2 {
			continue
		}
		if p := string(rs[:len(rs)-1]); present.Has(p) {
			if err := g.AddEdge(p, w, cfg.bidirectional); err != nil {
				return nil, fmt.Errorf("FromWords: AddEdge(%s,%s): %w", p, w, err)
			}
		}
	}

	return g, nil
}

// bucketKey renders rs with position i replaced by the wildcard, prefixed by
// i so that words containing the wildcard rune cannot collide across positions.
func bucketKey(rs []rune, i int) string {
	var b strings.Builder
	b.Grow(len(rs) + 4)
	b.WriteString(strconv.Itoa(i))
	b.WriteByte(':')
	for j, r := range rs {
		if j == i {
			b.WriteRune(wildcard)
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// prepare applies normalization and the length filter, drops empties and
// duplicates, and returns the words sorted.
func prepare(words []string, cfg builderConfig) []string {
	seen := make(core.Set, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if cfg.normalize {
			w = strings.ToLower(strings.TrimSpace(w))
		}
		if w == "" || seen.Has(w) {
			continue
		}
		if cfg.targetLength > 0 && utf8.RuneCountInString(w) != cfg.targetLength {
			continue
		}
		seen.Add(w)
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// ReadWords reads one word per line, skipping blank lines and lines starting
// with '#'.
func ReadWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("builder: read words: %w", err)
	}

	return out, nil
}

// LoadWords reads a word list file with ReadWords.
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("builder: open word list %q: %w", path, err)
	}
	defer f.Close()

	return ReadWords(f)
}
