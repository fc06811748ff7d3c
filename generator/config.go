package generator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig indicates a Config that fails validation.
var ErrInvalidConfig = errors.New("generator: invalid config")

// DefaultMinHardness keeps ladders whose endpoints differ in at least two places.
const DefaultMinHardness = 1

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the batch configuration surface.
type Config struct {
	// NumberOfSequences is how many valid ladders to collect before filtering.
	NumberOfSequences int `yaml:"number_of_sequences" validate:"gt=0"`

	// IntermediarySteps is the number of words between start and end.
	IntermediarySteps int `yaml:"intermediary_steps" validate:"gte=0"`

	// MinHardness drops ladders whose hardness is not strictly greater.
	MinHardness int `yaml:"min_hardness" validate:"gte=0"`
}

// DefaultConfig returns a Config with DefaultMinHardness and one intermediary step.
func DefaultConfig() Config {
	return Config{
		NumberOfSequences: 1,
		IntermediarySteps: 1,
		MinHardness:       DefaultMinHardness,
	}
}

// Steps returns the full ladder length: both endpoints plus the intermediaries.
func (c Config) Steps() int { return c.IntermediarySteps + 2 }

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
