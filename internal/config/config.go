// Package config loads optional covgap settings from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up in the working directory
// when no --config flag is given.
const DefaultFile = ".covgap.yml"

// DefaultInput is the tracefile read when neither an argument nor a
// config entry names one.
const DefaultInput = "coverage/lcov.info"

// Config holds the file-configurable settings. Zero values mean
// "not set"; Load fills them from defaults.
type Config struct {
	// Input is the tracefile path.
	Input string `yaml:"input"`

	// Target is the coverage target percentage.
	Target float64 `yaml:"target"`

	// Top caps the lowest-coverage priority list.
	Top int `yaml:"top"`

	// StripPrefixes are path prefixes removed from file paths for
	// display (e.g. the absolute project root baked into the
	// tracefile by the instrumentation tool).
	StripPrefixes []string `yaml:"strip_prefixes"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Input:  DefaultInput,
		Target: 80,
		Top:    5,
	}
}

// Load reads the config file at path and merges it over the
// defaults. When path is empty, DefaultFile is used if it exists;
// a missing default file is not an error, a missing explicit file
// is. A file that exists but fails to decode is always fatal.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if file.Input != "" {
		cfg.Input = file.Input
	}
	if file.Target > 0 {
		cfg.Target = file.Target
	}
	if file.Top > 0 {
		cfg.Top = file.Top
	}
	if len(file.StripPrefixes) > 0 {
		cfg.StripPrefixes = file.StripPrefixes
	}

	return cfg, nil
}
