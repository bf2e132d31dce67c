/* config.go
 * Contains the CLI configuration: defaults, viper key registration, loading and validation.
 * Precedence is flags, then CUPS_* environment variables, then the config file, then defaults
 */

package cli

import (
	"errors"
	"fmt"
	"strings"

	"knockout-cups/cup/registry"

	"github.com/spf13/viper"
)

// Simulator modes
const (
	SimulatorRandom = "random"
	SimulatorFixed  = "fixed"
)

// Config is the full CLI configuration
type Config struct {
	Cup        CupConfig        `mapstructure:"cup"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// CupConfig selects and sizes the cup
type CupConfig struct {
	Type string `mapstructure:"type"`
	// Rounds sizes bracket cups (2^Rounds teams)
	Rounds int `mapstructure:"rounds"`
	// TeamCount sizes the stepladder
	TeamCount        int  `mapstructure:"team_count"`
	RequireDoubleWin bool `mapstructure:"require_double_win"`
}

// SimulationConfig controls how matches are decided and how fast they are played
type SimulationConfig struct {
	Simulator string `mapstructure:"simulator"`
	// Seed of the random simulator. 0 seeds from the clock
	Seed uint64 `mapstructure:"seed"`
	// MatchesPerSecond paces play. 0 plays as fast as possible
	MatchesPerSecond float64 `mapstructure:"matches_per_second"`
}

// LoggingConfig controls the slog handler
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Cup: CupConfig{
			Type:             registry.PowerOfTwoSingle,
			Rounds:           3,
			TeamCount:        8,
			RequireDoubleWin: true,
		},
		Simulation: SimulationConfig{
			Simulator: SimulatorRandom,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// SetDefaults registers every key with its default so env variables and Unmarshal can see it
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("cup.type", defaults.Cup.Type)
	v.SetDefault("cup.rounds", defaults.Cup.Rounds)
	v.SetDefault("cup.team_count", defaults.Cup.TeamCount)
	v.SetDefault("cup.require_double_win", defaults.Cup.RequireDoubleWin)

	v.SetDefault("simulation.simulator", defaults.Simulation.Simulator)
	v.SetDefault("simulation.seed", defaults.Simulation.Seed)
	v.SetDefault("simulation.matches_per_second", defaults.Simulation.MatchesPerSecond)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

// Load reads the configuration out of v and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error
	if c.Cup.Type == "" {
		errs = append(errs, errors.New("cup.type is required"))
	}
	if c.Cup.Rounds < 0 {
		errs = append(errs, fmt.Errorf("cup.rounds must not be negative, got %d", c.Cup.Rounds))
	}
	if c.Cup.TeamCount < 0 {
		errs = append(errs, fmt.Errorf("cup.team_count must not be negative, got %d", c.Cup.TeamCount))
	}
	switch strings.ToLower(c.Simulation.Simulator) {
	case SimulatorRandom, SimulatorFixed:
	default:
		errs = append(errs, fmt.Errorf("simulation.simulator must be %q or %q, got %q",
			SimulatorRandom, SimulatorFixed, c.Simulation.Simulator))
	}
	if c.Simulation.MatchesPerSecond < 0 {
		errs = append(errs, fmt.Errorf("simulation.matches_per_second must not be negative, got %v",
			c.Simulation.MatchesPerSecond))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}
