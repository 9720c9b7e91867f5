package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultConfigName is looked up in the working directory when --config is
// not given.
const defaultConfigName = "wireframe.yaml"

// Config holds render defaults read from wireframe.yaml. Command-line flags
// override any value set here.
type Config struct {
	Theme  string  `yaml:"theme"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Scale  float64 `yaml:"scale"`
	Seed   *int64  `yaml:"seed"`
	Output string  `yaml:"output"` // output directory for rendered SVGs
	Strict bool    `yaml:"strict"` // non-zero exit on any diagnostic
}

// loadConfig reads the config file. A missing default config is not an
// error; a missing explicit --config path is.
func loadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}
