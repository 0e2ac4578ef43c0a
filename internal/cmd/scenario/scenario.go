// Package scenario parses scenario command flags and replays Lua scenarios.
package scenario

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"

	entrypoint "github.com/louisbranch/randomness/internal/platform/cmd"
	"github.com/louisbranch/randomness/internal/tools/scenario"
)

// Config holds scenario command configuration.
type Config struct {
	Scenario   string `env:"RANDOMNESS_SCENARIO_FILE"`
	Assertions bool   `env:"RANDOMNESS_SCENARIO_ASSERT"  envDefault:"true"`
	Verbose    bool   `env:"RANDOMNESS_SCENARIO_VERBOSE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Scenario, "scenario", cfg.Scenario, "path to scenario lua file")
	fs.BoolVar(&cfg.Assertions, "assert", cfg.Assertions, "enable assertions (disable to log expectations)")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable verbose logging")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the scenario command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	if cfg.Scenario == "" {
		return errors.New("scenario path is required")
	}

	mode := scenario.AssertionStrict
	if !cfg.Assertions {
		mode = scenario.AssertionLogOnly
	}

	logger := log.New(errOut, "", 0)
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceScenario, func(ctx context.Context) error {
		if err := scenario.RunFile(ctx, scenario.Config{
			Assertions: mode,
			Verbose:    cfg.Verbose,
			Logger:     logger,
		}, cfg.Scenario); err != nil {
			return err
		}
		_, err := io.WriteString(out, "scenario passed\n")
		return err
	})
}
