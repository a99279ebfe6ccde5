// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package config loads interpreter settings from plambda.toml or plambda.yaml.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Names of the configuration files searched for by Find, in order of preference.
var FileNames = []string{"plambda.toml", "plambda.yaml"}

const (
	DefaultMaxSteps  = 1000
	DefaultUnifyFuel = 1000
	DefaultColor     = "auto"
)

// Config holds interpreter settings. Zero values select defaults.
type Config struct {
	// Bound on reduction steps per evaluation
	MaxSteps int `toml:"max_steps" yaml:"max_steps"`
	// Work budget for each unification
	UnifyFuel int `toml:"unify_fuel" yaml:"unify_fuel"`
	// Colored output: "auto", "always" or "never"
	Color string `toml:"color" yaml:"color"`
	// Enable debug logging
	Debug bool `toml:"debug" yaml:"debug"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{MaxSteps: DefaultMaxSteps, UnifyFuel: DefaultUnifyFuel, Color: DefaultColor}
}

// Load reads the configuration file at path. TOML is expected for the `.toml` extension and YAML
// for `.yaml` or `.yml`. Absent settings take their default values.
func Load(path string) (Config, error) {
	var config Config
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.DecodeFile(path, &config); err != nil {
			return Config{}, errors.Wrapf(err, "decode %s", path)
		}
	case ".yaml", ".yml":
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, "read %s", path)
		}
		if err := yaml.Unmarshal(content, &config); err != nil {
			return Config{}, errors.Wrapf(err, "decode %s", path)
		}
	default:
		return Config{}, errors.Errorf("unsupported config format: %s", path)
	}
	if err := config.validate(); err != nil {
		return Config{}, errors.Wrapf(err, "invalid config %s", path)
	}
	return config.withDefaults(), nil
}

// Find searches dir and its parents for a configuration file, stopping at a directory containing
// `.git` or at the filesystem root. The path of the file is returned along with its configuration;
// if no file is found, the path is empty and the default configuration is returned.
func Find(dir string) (string, Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", Config{}, err
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				config, err := Load(path)
				if err != nil {
					return "", Config{}, err
				}
				return path, config, nil
			}
		}

		// Stop at .git boundary
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", Default(), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", Default(), nil
		}
		dir = parent
	}
}

func (c Config) validate() error {
	if c.MaxSteps < 0 {
		return errors.Errorf("max_steps must not be negative: %d", c.MaxSteps)
	}
	if c.UnifyFuel < 0 {
		return errors.Errorf("unify_fuel must not be negative: %d", c.UnifyFuel)
	}
	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return errors.Errorf("color must be auto, always or never: %q", c.Color)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.MaxSteps == 0 {
		c.MaxSteps = DefaultMaxSteps
	}
	if c.UnifyFuel == 0 {
		c.UnifyFuel = DefaultUnifyFuel
	}
	if c.Color == "" {
		c.Color = DefaultColor
	}
	return c
}
