package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/rdsim/internal/metrics"
	"github.com/san-kum/rdsim/internal/rd"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Points != 200 || cfg.Steps != 1000 {
		t.Errorf("unexpected default grid: %d points, %d steps", cfg.Points, cfg.Steps)
	}
	if cfg.Scheme != "rk4" {
		t.Errorf("expected default scheme rk4, got %s", cfg.Scheme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"one point", func(c *Config) { c.Points = 1 }},
		{"zero steps", func(c *Config) { c.Steps = 0 }},
		{"negative length", func(c *Config) { c.Length = -1 }},
		{"negative duration", func(c *Config) { c.Duration = -5 }},
		{"negative du", func(c *Config) { c.Du = -0.001 }},
		{"zero mass", func(c *Config) { c.TotalProtein = 0 }},
		{"seed wider than grid", func(c *Config) { c.SeedWidth = 500 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, rd.ErrGrid) {
				t.Errorf("expected ErrGrid, got %v", err)
			}
		})
	}
}

func TestGridDerivation(t *testing.T) {
	g, err := DefaultConfig().Grid()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(g.Dx-1.0/200) > 1e-15 {
		t.Errorf("dx = %g, want %g", g.Dx, 1.0/200)
	}
	if math.Abs(g.Dt-0.5) > 1e-15 {
		t.Errorf("dt = %g, want 0.5", g.Dt)
	}
}

func TestInitialState(t *testing.T) {
	cfg := DefaultConfig()
	g, _ := cfg.Grid()

	u, v, err := cfg.InitialState()
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < cfg.SeedWidth; i++ {
		if u[i] != cfg.SeedValue {
			t.Fatalf("u[%d] = %g, want seed value %g", i, u[i], cfg.SeedValue)
		}
	}
	for i := cfg.SeedWidth; i < cfg.Points; i++ {
		if u[i] != cfg.Baseline {
			t.Fatalf("u[%d] = %g, want baseline %g", i, u[i], cfg.Baseline)
		}
	}
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			t.Fatal("v is not uniform")
		}
	}

	mass := metrics.Mass(u, v, g.Dx)
	if math.Abs(mass-cfg.TotalProtein) > 1e-12 {
		t.Errorf("initial mass = %.15f, want %g", mass, cfg.TotalProtein)
	}
}

func TestInitialState_MassTooSmall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TotalProtein = 0.01
	if _, _, err := cfg.InitialState(); !errors.Is(err, rd.ErrGrid) {
		t.Errorf("expected ErrGrid, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")

	cfg := DefaultConfig()
	cfg.K0 = 0.05
	cfg.Scheme = "explicit"
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.K0 != 0.05 || loaded.Scheme != "explicit" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Points != cfg.Points {
		t.Errorf("points = %d, want %d", loaded.Points, cfg.Points)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
