// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • FromWords itself never panics; it returns sentinel errors.

package builder

import "errors"

// ErrNoWords indicates that no usable word survived normalization/filtering.
var ErrNoWords = errors.New("builder: no words")

// builderConfig aggregates all knobs; passed by value.
type builderConfig struct {
	targetLength  int  // 0 = any length
	bidirectional bool // mirror every edge
	normalize     bool // lowercase + trim
}

// newBuilderConfig applies opts over deterministic defaults (last wins).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		targetLength:  0,
		bidirectional: true,
		normalize:     true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes FromWords.
type Option func(*builderConfig)

// WithTargetLength keeps only words of exactly n runes. Panics if n < 1.
func WithTargetLength(n int) Option {
	if n < 1 {
		panic("builder: WithTargetLength(n<1)")
	}
	return func(c *builderConfig) {
		c.targetLength = n
	}
}

// WithDirected stores each edge once, from the lexicographically smaller word
// to the larger one.
func WithDirected() Option {
	return func(c *builderConfig) {
		c.bidirectional = false
	}
}

// WithNormalize toggles lowercasing and trimming of input words.
func WithNormalize(on bool) Option {
	return func(c *builderConfig) {
		c.normalize = on
	}
}
