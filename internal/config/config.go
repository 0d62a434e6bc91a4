package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds engine-level settings shared by the prediction and
// comparison adapters.
type Config struct {
	// Workers bounds the parallel fan-out of per-observation
	// evaluation in the mixture aggregator. 1 disables concurrency.
	Workers int

	// ProbTolerance is the absolute tolerance used when checking that
	// probability vectors sum to one.
	ProbTolerance float64

	// OverflowSuffix is appended to the overflow bucket's value to
	// form its label (e.g. "+" yields "4+").
	OverflowSuffix string
}

// Default returns the baseline configuration
func Default() Config {
	return Config{
		Workers:        4,
		ProbTolerance:  1e-9,
		OverflowSuffix: "+",
	}
}

// Load reads configuration from environment variables, after loading a
// .env file when one is present. Missing variables fall back to
// defaults; malformed values are errors.
func Load() (Config, error) {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("LOSSMIX_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOSSMIX_WORKERS %q: %w", v, err)
		}
		cfg.Workers = workers
	}

	if v := os.Getenv("LOSSMIX_PROB_TOLERANCE"); v != "" {
		tol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid LOSSMIX_PROB_TOLERANCE %q: %w", v, err)
		}
		cfg.ProbTolerance = tol
	}

	if v := os.Getenv("LOSSMIX_OVERFLOW_SUFFIX"); v != "" {
		cfg.OverflowSuffix = v
	}

	return cfg, cfg.Validate()
}

// Validate checks configuration invariants
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.ProbTolerance <= 0 {
		return fmt.Errorf("probability tolerance must be positive, got %g", c.ProbTolerance)
	}
	return nil
}
