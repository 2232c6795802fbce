// Package application wires the rubric checks into the match engine and
// provides the ranking, sharding and pipeline orchestration on top of them.
package application

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Package-level validator instance for configuration validation.
var validate = validator.New()

// RubricConfig defines the weights of the scoring rubric. The defaults
// reproduce the production rubric: a 40-point material gate plus additive
// 25/20/15 categories, with 3 points per partially-matched technical
// requirement.
type RubricConfig struct {
	// MaterialWeight is awarded on a material match. Material is a hard
	// gate: on mismatch the score is forced to zero regardless of this
	// weight.
	MaterialWeight int `yaml:"material_weight" validate:"required,min=1,max=100"`

	// PurityWeight is awarded when candidate purity meets or exceeds the
	// requested purity.
	PurityWeight int `yaml:"purity_weight" validate:"required,min=1,max=100"`

	// QuantityWeight is awarded when quantities share a unit and the
	// candidate quantity is sufficient.
	QuantityWeight int `yaml:"quantity_weight" validate:"required,min=1,max=100"`

	// TechnicalWeight is awarded when every requested technical
	// requirement is met, or when none were requested.
	TechnicalWeight int `yaml:"technical_weight" validate:"required,min=1,max=100"`

	// TechnicalPerItem is the credit per matched requirement on a partial
	// match. Deliberately uncapped at the category level; the overall
	// score clamp bounds the total.
	TechnicalPerItem int `yaml:"technical_per_item" validate:"min=0,max=100"`
}

// Config is the engine configuration loaded from YAML.
type Config struct {
	// Rubric holds the scoring weights.
	Rubric RubricConfig `yaml:"rubric" validate:"required"`
}

// DefaultConfig returns the production rubric weights.
func DefaultConfig() Config {
	return Config{
		Rubric: RubricConfig{
			MaterialWeight:   40,
			PurityWeight:     25,
			QuantityWeight:   20,
			TechnicalWeight:  15,
			TechnicalPerItem: 3,
		},
	}
}

// ParseConfig decodes and validates a YAML engine configuration. Missing
// rubric fields are not defaulted; use DefaultConfig when no file is given.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse engine config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("engine config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses an engine configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read engine config %s: %w", path, err)
	}
	return ParseConfig(data)
}
