package config

import (
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every recognised environment variable.
const EnvPrefix = "GATSP_"

// applyEnv overlays GATSP_* variables. Malformed numbers are errors rather
// than silently ignored.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var err error
	ints := map[string]*int{
		"POPULATION_SIZE":   &c.Solver.PopulationSize,
		"MAX_STAGNATION":    &c.Solver.MaxStagnation,
		"MAX_GENERATIONS":   &c.Solver.MaxGenerations,
		"MAX_SEED_ATTEMPTS": &c.Solver.MaxSeedAttempts,
	}
	for key, dst := range ints {
		if v, ok := lookup(EnvPrefix + key); ok {
			if *dst, err = strconv.Atoi(v); err != nil {
				return envErr(key, v, err)
			}
		}
	}

	floats := map[string]*float64{
		"CROSSOVER_RATE": &c.Solver.CrossoverRate,
		"MUTATION_RATE":  &c.Solver.MutationRate,
		"ELITISM_RATE":   &c.Solver.ElitismRate,
	}
	for key, dst := range floats {
		if v, ok := lookup(EnvPrefix + key); ok {
			if *dst, err = strconv.ParseFloat(v, 64); err != nil {
				return envErr(key, v, err)
			}
		}
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		if c.Solver.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return envErr("SEED", v, err)
		}
	}
	if v, ok := lookup(EnvPrefix + "DISTINCT_SEED"); ok {
		if c.Solver.DistinctSeed, err = strconv.ParseBool(v); err != nil {
			return envErr("DISTINCT_SEED", v, err)
		}
	}

	strs := map[string]*string{
		"SELECTION":  &c.Solver.Selection,
		"LOG_LEVEL":  &c.Log.Level,
		"LOG_FORMAT": &c.Log.Format,
		"STORE_PATH": &c.Store.Path,
	}
	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}

	return nil
}

func envErr(key, val string, err error) error {
	return fmt.Errorf("%s%s=%q: %w: %w", EnvPrefix, key, val, ErrInvalid, err)
}
