// Package config loads the YAML run configuration for the wordladder CLI.
//
// A file only needs the keys it wants to change; everything else keeps the
// value from Default. Unknown keys are rejected so typos surface early.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/dfs"
	"github.com/katalvlaran/wordladder/generator"
)

// ErrInvalid indicates a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Log controls the process logger.
type Log struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// Config is the full run configuration. The batch parameters are inlined
// from generator.Config.
type Config struct {
	generator.Config `yaml:",inline"`

	GraphPath  string `yaml:"graph_path"`
	RanksPath  string `yaml:"ranks_path"`
	WordsPath  string `yaml:"words_path"`
	OutputPath string `yaml:"output_path"`

	Seed      int64  `yaml:"seed"`
	Separator string `yaml:"separator" validate:"required"`

	Strategy           string `yaml:"strategy" validate:"oneof=restart backtrack"`
	RestartBudget      int    `yaml:"restart_budget" validate:"gte=2"`
	ReachabilityFilter bool   `yaml:"reachability_filter"`

	MetricsPath string `yaml:"metrics_path"`

	Log Log `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Config:        generator.DefaultConfig(),
		GraphPath:     "graph.json",
		RanksPath:     "word_rank.json",
		OutputPath:    "ladders.csv",
		Seed:          1,
		Separator:     generator.DefaultSeparator,
		Strategy:      dfs.StrategyRestart.String(),
		RestartBudget: dfs.DefaultRestartBudget,
		Log:           Log{Level: "info"},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Read decodes YAML from r on top of Default and validates the result.
// An empty document yields Default.
func Read(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field constraint, including the inlined batch ones.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// WalkOptions translates the walker settings into dfs options.
func (c Config) WalkOptions() ([]dfs.Option, error) {
	s, err := dfs.ParseStrategy(c.Strategy)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if c.RestartBudget < 2 {
		return nil, fmt.Errorf("%w: restart_budget %d below 2", ErrInvalid, c.RestartBudget)
	}

	return []dfs.Option{dfs.WithStrategy(s), dfs.WithRestartBudget(c.RestartBudget)}, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
