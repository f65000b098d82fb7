package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jdf43/pele/internal/landscape"
	"github.com/jdf43/pele/internal/physics"
)

const (
	DefaultEps = 1.0
	DefaultSca = 0.2
	DefaultPow = 2.5
)

// Config describes a particle system and its potential in yaml form.
type Config struct {
	Model  string    `yaml:"model"`
	NDim   int       `yaml:"ndim"`
	Eps    float64   `yaml:"eps"`
	Sca    float64   `yaml:"sca"`
	Pow    float64   `yaml:"pow"`
	Radii  []float64 `yaml:"radii"`
	Coords []float64 `yaml:"coords"`
	Box    []float64 `yaml:"box,omitempty"`
	Pairs  []int     `yaml:"pairs,omitempty"`
	Frozen []int     `yaml:"frozen,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Model: "hswca",
		NDim:  3,
		Eps:   DefaultEps,
		Sca:   DefaultSca,
		Pow:   DefaultPow,
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

// Validate checks the cross-field invariants before any potential is built.
func (c *Config) Validate() error {
	if c.NDim != 2 && c.NDim != 3 {
		return fmt.Errorf("config: ndim must be 2 or 3, got %d", c.NDim)
	}
	if len(c.Coords)%c.NDim != 0 {
		return fmt.Errorf("config: %d coords is not a multiple of ndim %d", len(c.Coords), c.NDim)
	}
	if n := len(c.Coords) / c.NDim; len(c.Radii) != n {
		return fmt.Errorf("config: %d radii for %d atoms", len(c.Radii), n)
	}
	if len(c.Box) != 0 && len(c.Box) != c.NDim {
		return fmt.Errorf("config: box length %d does not match ndim %d", len(c.Box), c.NDim)
	}
	return nil
}

// Spec converts the config into construction parameters for the registry.
// The stored coords double as the frozen-variant reference vector.
func (c *Config) Spec() physics.Spec {
	return physics.Spec{
		Model:     c.Model,
		NDim:      c.NDim,
		Eps:       c.Eps,
		Sca:       c.Sca,
		Pow:       c.Pow,
		Radii:     c.Radii,
		Box:       c.Box,
		Pairs:     c.Pairs,
		Frozen:    c.Frozen,
		Reference: landscape.Coords(c.Coords),
	}
}

// Build validates the config and assembles its potential.
func (c *Config) Build() (landscape.Potential, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return physics.Build(c.Spec())
}

// InitialCoords returns the evaluation vector matching the built potential:
// the mobile subset when coordinates are frozen, the full vector otherwise.
func (c *Config) InitialCoords() landscape.Coords {
	full := landscape.Coords(c.Coords).Clone()
	if len(c.Frozen) == 0 {
		return full
	}
	frozen := make(map[int]bool, len(c.Frozen))
	for _, idx := range c.Frozen {
		frozen[idx] = true
	}
	reduced := make(landscape.Coords, 0, len(full)-len(frozen))
	for i, v := range full {
		if !frozen[i] {
			reduced = append(reduced, v)
		}
	}
	return reduced
}
