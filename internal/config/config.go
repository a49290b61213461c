// Package config loads and validates the experiment parameters and derives
// the grid and initial condition from them.
package config

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/rdsim/internal/rd"
)

const (
	DefaultPoints       = 200
	DefaultLength       = 1.0
	DefaultDuration     = 500.0
	DefaultSteps        = 1000
	DefaultDu           = 0.001
	DefaultDv           = 0.1
	DefaultK0           = 0.067
	DefaultTotalProtein = 2.26
	DefaultSeedWidth    = 10
	DefaultSeedValue    = 2.0
	DefaultBaseline     = 0.1
)

// Config describes one experiment. The defaults are the wave-pinning
// polarization scenario: a short stretch of elevated U at the left edge and
// a uniform pool of V sized so the total mass matches total_protein.
type Config struct {
	Points       int     `yaml:"points"`
	Length       float64 `yaml:"length"`
	Duration     float64 `yaml:"duration"`
	Steps        int     `yaml:"steps"`
	Du           float64 `yaml:"d_u"`
	Dv           float64 `yaml:"d_v"`
	K0           float64 `yaml:"k0"`
	TotalProtein float64 `yaml:"total_protein"`
	Scheme       string  `yaml:"scheme"`
	SeedWidth    int     `yaml:"seed_width"`
	SeedValue    float64 `yaml:"seed_value"`
	Baseline     float64 `yaml:"baseline"`
}

func DefaultConfig() *Config {
	return &Config{
		Points:       DefaultPoints,
		Length:       DefaultLength,
		Duration:     DefaultDuration,
		Steps:        DefaultSteps,
		Du:           DefaultDu,
		Dv:           DefaultDv,
		K0:           DefaultK0,
		TotalProtein: DefaultTotalProtein,
		Scheme:       "rk4",
		SeedWidth:    DefaultSeedWidth,
		SeedValue:    DefaultSeedValue,
		Baseline:     DefaultBaseline,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := c.Grid(); err != nil {
		return err
	}
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if c.TotalProtein <= 0 {
		return fmt.Errorf("%w: total_protein must be positive, got %g", rd.ErrGrid, c.TotalProtein)
	}
	if c.SeedWidth < 0 || c.SeedWidth > c.Points {
		return fmt.Errorf("%w: seed_width %d outside [0, %d]", rd.ErrGrid, c.SeedWidth, c.Points)
	}
	return nil
}

// Grid derives the discretization: dx = L/J, dt = T/N.
func (c *Config) Grid() (rd.Grid, error) {
	if c.Points <= 0 || c.Steps <= 0 {
		return rd.NewGrid(c.Points, 0, c.Steps, 0)
	}
	dx := c.Length / float64(c.Points)
	dt := c.Duration / float64(c.Steps)
	return rd.NewGrid(c.Points, dx, c.Steps, dt)
}

func (c *Config) Params() rd.Params {
	return rd.Params{K0: c.K0, Du: c.Du, Dv: c.Dv}
}

// InitialState builds the step profile for U and a uniform V chosen so the
// discrete mass sum (u+v)*dx equals TotalProtein.
func (c *Config) InitialState() (rd.Field, rd.Field, error) {
	g, err := c.Grid()
	if err != nil {
		return nil, nil, err
	}
	u := make(rd.Field, g.Points)
	for i := range u {
		if i < c.SeedWidth {
			u[i] = c.SeedValue
		} else {
			u[i] = c.Baseline
		}
	}
	vUniform := (c.TotalProtein - floats.Sum(u)*g.Dx) / (float64(g.Points) * g.Dx)
	if vUniform < 0 {
		return nil, nil, fmt.Errorf("%w: total_protein %g below initial U mass", rd.ErrGrid, c.TotalProtein)
	}
	v := make(rd.Field, g.Points)
	for i := range v {
		v[i] = vUniform
	}
	return u, v, nil
}
