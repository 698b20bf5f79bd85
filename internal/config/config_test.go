package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Penalties.A != 100 || cfg.Penalties.B != 500 || cfg.Penalties.Bp != 1000 || cfg.Penalties.C != 1 {
		t.Fatalf("penalties = %+v, want defaults", cfg.Penalties)
	}
	if cfg.Solver != "compare" {
		t.Fatalf("solver = %q, want compare", cfg.Solver)
	}
	if cfg.MaxNodes != 25 {
		t.Fatalf("maxNodes = %d, want 25", cfg.MaxNodes)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "penalties:\n  a: 50\n  b: 250\n  bp: 600\n  c: 2\nsolver: energy\ntraffic:\n  low: 1\n  medium: 2\n  high: 4\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Penalties.A != 50 || cfg.Penalties.Bp != 600 {
		t.Fatalf("penalties = %+v, want file values", cfg.Penalties)
	}
	if cfg.Solver != "energy" {
		t.Fatalf("solver = %q, want energy", cfg.Solver)
	}
	if m := cfg.Traffic.Multipliers(); m["high"] != 4 {
		t.Fatalf("traffic high = %v, want 4", m["high"])
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("solver: greedy\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("SOLVER", "energy")
	t.Setenv("QUBO_PENALTY_A", "42")
	t.Setenv("MAX_NODES", "10")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Solver != "energy" {
		t.Fatalf("solver = %q, env should win over file", cfg.Solver)
	}
	if cfg.Penalties.A != 42 {
		t.Fatalf("penalty A = %v, want 42", cfg.Penalties.A)
	}
	if cfg.MaxNodes != 10 {
		t.Fatalf("maxNodes = %d, want 10", cfg.MaxNodes)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("SOLVER", "annealer")
	if _, err := Load(""); err == nil {
		t.Fatal("unknown solver accepted")
	}

	t.Setenv("SOLVER", "energy")
	t.Setenv("QUBO_PENALTY_A", "2000") // breaks A < B
	if _, err := Load(""); err == nil {
		t.Fatal("inverted penalty hierarchy accepted")
	}

	t.Setenv("QUBO_PENALTY_A", "100")
	t.Setenv("TRAFFIC_LOW", "-1")
	if _, err := Load(""); err == nil {
		t.Fatal("negative traffic multiplier accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("missing config file not reported")
	}
}
