package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jalil-salame/nsudoku-solve/puzzle"
)

/*

Benchmark configuration

*/

// A Config describes a benchmark run: which puzzles, which
// strategies, and how much parallelism.  It is usually loaded
// from a YAML file and overridden by command-line flags.
type Config struct {
	// PuzzleFile names the file with one puzzle per line.
	PuzzleFile string `yaml:"puzzle_file"`
	// Strategies are run one after another over the whole batch.
	// Empty means just "sorted".
	Strategies []string `yaml:"strategies"`
	// Workers bounds per-batch parallelism; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// UseCache short-circuits puzzles whose solution is already
	// in the Redis cache.
	UseCache bool `yaml:"use_cache"`
	// StoreRuns persists run statistics to Postgres.
	StoreRuns bool `yaml:"store_runs"`
}

// LoadConfig reads and validates a YAML benchmark config.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate applies defaults and rejects unknown strategy names.
func (cfg *Config) Validate() error {
	if len(cfg.Strategies) == 0 {
		cfg.Strategies = []string{"sorted"}
	}
	for _, name := range cfg.Strategies {
		if _, ok := puzzle.StrategyNamed(name); !ok {
			return fmt.Errorf("unknown strategy %q (have %v)",
				name, puzzle.StrategyNames())
		}
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	return nil
}
