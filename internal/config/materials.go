package config

import (
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Material presets carry the common engineering constants so CLI and TUI
// callers can name a grade instead of typing a modulus. SI units.
type Material struct {
	Name           string  `yaml:"name"`
	ElasticModulus float64 `yaml:"elastic_modulus_pa"`
	YieldStrength  float64 `yaml:"yield_strength_pa"`
}

type Config struct {
	Materials []Material `yaml:"materials"`
}

func Default() *Config {
	return &Config{
		Materials: []Material{
			{Name: "steel", ElasticModulus: 200e9, YieldStrength: 235e6},
			{Name: "aluminum", ElasticModulus: 70e9, YieldStrength: 95e6},
			{Name: "concrete", ElasticModulus: 30e9, YieldStrength: 20e6},
			{Name: "timber", ElasticModulus: 11e9, YieldStrength: 24e6},
			{Name: "titanium", ElasticModulus: 110e9, YieldStrength: 830e6},
		},
	}
}

// Load reads presets from path, falling back to the compiled-in defaults for
// any material the file does not redefine.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, err
	}
	cfg := Default()
	for _, m := range fileCfg.Materials {
		cfg.upsert(m)
	}
	return cfg, nil
}

func (c *Config) upsert(m Material) {
	for i := range c.Materials {
		if strings.EqualFold(c.Materials[i].Name, m.Name) {
			c.Materials[i] = m
			return
		}
	}
	c.Materials = append(c.Materials, m)
}

// Lookup resolves a material by name, case-insensitively.
func (c *Config) Lookup(name string) (Material, bool) {
	for _, m := range c.Materials {
		if strings.EqualFold(m.Name, name) {
			return m, true
		}
	}
	return Material{}, false
}

// Names lists the configured material names sorted.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Materials))
	for _, m := range c.Materials {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}
