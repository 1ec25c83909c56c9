// Package config holds the run configuration: input paths, output
// directory, logging, chart toggles, and the optional publish target.
//
// One Config is loaded per invocation and passed into each component at
// construction; nothing reads configuration globally.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Publish configures optional artifact publishing to an S3-compatible
// endpoint. Disabled unless Endpoint and Bucket are set.
type Publish struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	UseTLS    bool   `yaml:"use_tls"`
}

// Config is the complete run configuration.
type Config struct {
	NumericCSV  string `yaml:"numeric_csv"`
	VectorFile  string `yaml:"vector_file"`
	CategoryCSV string `yaml:"category_csv"`
	OutputDir   string `yaml:"output_dir"`

	LogLevel  string `yaml:"log_level"`  // debug | info | warn | error
	LogFormat string `yaml:"log_format"` // text | json

	Charts  bool    `yaml:"charts"`
	Publish Publish `yaml:"publish"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		NumericCSV:  "input/sample_data.csv",
		VectorFile:  "input/sample_vectors.json",
		CategoryCSV: "input/sample_categories.csv",
		OutputDir:   "output",
		LogLevel:    "info",
		LogFormat:   "text",
		Charts:      true,
	}
}

// Load reads a YAML config file over the defaults. A missing path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q (want text or json)", c.LogFormat)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if c.Publish.Enabled {
		if c.Publish.Endpoint == "" || c.Publish.Bucket == "" {
			return fmt.Errorf("publish enabled but endpoint/bucket missing")
		}
	}
	return nil
}
