// Package config loads the gatsp binary configuration.
//
// Sources, lowest priority first:
//  1. Defaults (genetic.DefaultOptions, info-level JSON logs, in-memory store).
//  2. A YAML file, when a path is given. Unknown keys are rejected.
//  3. GATSP_* environment variables.
//
// The merged result is validated with struct tags before use.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gatsp/genetic"
)

// ErrInvalid wraps every load or validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full binary configuration.
type Config struct {
	Solver Solver `yaml:"solver"`
	Log    Log    `yaml:"log"`
	Store  Store  `yaml:"store"`
}

// Solver mirrors the tunables of genetic.Options.
type Solver struct {
	PopulationSize  int     `yaml:"population_size" validate:"min=2"`
	CrossoverRate   float64 `yaml:"crossover_rate" validate:"gte=0,lte=1"`
	MutationRate    float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	ElitismRate     float64 `yaml:"elitism_rate" validate:"gte=0,lt=1"`
	MaxStagnation   int     `yaml:"max_stagnation" validate:"min=1"`
	MaxGenerations  int     `yaml:"max_generations" validate:"min=0"`
	Seed            int64   `yaml:"seed"`
	Selection       string  `yaml:"selection" validate:"oneof=cost inverse"`
	DistinctSeed    bool    `yaml:"distinct_seed"`
	MaxSeedAttempts int     `yaml:"max_seed_attempts" validate:"min=0"`
}

// Log selects the logger level and encoding.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Store selects where solve runs are recorded. An empty Path keeps runs in
// memory for the lifetime of the process.
type Store struct {
	Path string `yaml:"path"`
}

var validate = validator.New()

// Default returns the configuration used when no file or env is given.
func Default() *Config {
	d := genetic.DefaultOptions()

	return &Config{
		Solver: Solver{
			PopulationSize:  d.PopulationSize,
			CrossoverRate:   d.CrossoverRate,
			MutationRate:    d.MutationRate,
			ElitismRate:     d.ElitismRate,
			MaxStagnation:   d.MaxStagnation,
			MaxGenerations:  d.MaxGenerations,
			Seed:            d.Seed,
			Selection:       d.Selection.String(),
			DistinctSeed:    d.DistinctSeed,
			MaxSeedAttempts: d.MaxSeedAttempts,
		},
		Log: Log{Level: "info", Format: "json"},
	}
}

// Load reads path (optional) and the process environment.
func Load(path string) (*Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an injectable environment lookup.
func LoadWith(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// readFile decodes a YAML document on top of cfg.
func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(c); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrInvalid, err)
	}

	return nil
}

// Validate checks every struct tag.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Options converts the solver section into genetic.Options for the given
// endpoints. The logger is left for the caller to attach.
func (c *Config) Options(start, stop string) (genetic.Options, error) {
	sel, err := genetic.ParseSelection(c.Solver.Selection)
	if err != nil {
		return genetic.Options{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return genetic.Options{
		Start:           start,
		Stop:            stop,
		PopulationSize:  c.Solver.PopulationSize,
		CrossoverRate:   c.Solver.CrossoverRate,
		MutationRate:    c.Solver.MutationRate,
		ElitismRate:     c.Solver.ElitismRate,
		MaxStagnation:   c.Solver.MaxStagnation,
		MaxGenerations:  c.Solver.MaxGenerations,
		Seed:            c.Solver.Seed,
		Selection:       sel,
		DistinctSeed:    c.Solver.DistinctSeed,
		MaxSeedAttempts: c.Solver.MaxSeedAttempts,
	}, nil
}
