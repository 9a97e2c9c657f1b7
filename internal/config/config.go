package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rayannott/flipmap/internal/gridmap"
	"github.com/rayannott/flipmap/internal/integrators"
	"github.com/rayannott/flipmap/internal/pendulum"
)

const (
	DefaultResolution = 101
)

// Config describes one flip-map run.
type Config struct {
	N          int                `yaml:"n"`
	Workers    int                `yaml:"workers"`
	Sequential bool               `yaml:"sequential"`
	Tolerance  float64            `yaml:"tolerance"`
	Constants  pendulum.Constants `yaml:"constants"`
	Output     string             `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		N:         DefaultResolution,
		Workers:   gridmap.DefaultWorkers,
		Tolerance: integrators.DefaultTolerance,
		Constants: pendulum.DefaultConstants(),
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
	if c.N < 2 {
		return gridmap.ErrResolution
	}
	if c.Workers < 1 {
		return gridmap.ErrWorkers
	}
	return c.Constants.Validate()
}
