// Package config loads solver settings from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	yaml "gopkg.in/yaml.v3"

	"qroute/internal/model"
)

// Config carries everything the CLI threads into the solvers. Defaults
// match the documented penalty and traffic tables. Nothing is global,
// so the core stays pure and testable in parallel.
type Config struct {
	Penalties   model.PenaltyParams `yaml:"penalties"`
	Traffic     TrafficConfig       `yaml:"traffic"`
	Solver      string              `yaml:"solver"`
	MaxNodes    int                 `yaml:"maxNodes"`
	MetricsAddr string              `yaml:"metricsAddr"`
}

// TrafficConfig overrides the multiplier table.
type TrafficConfig struct {
	Low    float64 `yaml:"low"`
	Medium float64 `yaml:"medium"`
	High   float64 `yaml:"high"`
}

// Multipliers converts the config table to the model representation.
func (t TrafficConfig) Multipliers() model.TrafficMultipliers {
	return model.TrafficMultipliers{
		model.TrafficLow:    t.Low,
		model.TrafficMedium: t.Medium,
		model.TrafficHigh:   t.High,
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Penalties: model.DefaultPenalties(),
		Traffic:   TrafficConfig{Low: 1.0, Medium: 1.5, High: 2.0},
		Solver:    "compare",
		MaxNodes:  25,
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment variables. Invalid
// penalty values are rejected here, before any computation begins.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	cfg.Penalties.A = getEnvFloat("QUBO_PENALTY_A", cfg.Penalties.A)
	cfg.Penalties.B = getEnvFloat("QUBO_PENALTY_B", cfg.Penalties.B)
	cfg.Penalties.Bp = getEnvFloat("QUBO_PENALTY_BP", cfg.Penalties.Bp)
	cfg.Penalties.C = getEnvFloat("QUBO_PENALTY_C", cfg.Penalties.C)
	cfg.Traffic.Low = getEnvFloat("TRAFFIC_LOW", cfg.Traffic.Low)
	cfg.Traffic.Medium = getEnvFloat("TRAFFIC_MEDIUM", cfg.Traffic.Medium)
	cfg.Traffic.High = getEnvFloat("TRAFFIC_HIGH", cfg.Traffic.High)
	cfg.Solver = getEnv("SOLVER", cfg.Solver)
	cfg.MaxNodes = getEnvInt("MAX_NODES", cfg.MaxNodes)
	cfg.MetricsAddr = getEnv("METRICS_ADDR", cfg.MetricsAddr)

	if err := cfg.Penalties.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Traffic.Low <= 0 || cfg.Traffic.Medium <= 0 || cfg.Traffic.High <= 0 {
		return nil, fmt.Errorf("config: traffic multipliers must be positive")
	}
	switch cfg.Solver {
	case "energy", "greedy", "compare":
	default:
		return nil, fmt.Errorf("config: unknown solver %q (allowed: energy, greedy, compare)", cfg.Solver)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
