// Package config handles the procvar.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cibseven/procvar"
	"github.com/cibseven/procvar/i18n"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "procvar.yaml"

// Output formats understood by report-producing commands.
var OutputFormats = []string{"text", "json", "yaml"}

// Config represents the procvar.yaml configuration file.
type Config struct {
	Version   int    `yaml:"version"`
	Language  string `yaml:"language,omitempty"`
	LongRange string `yaml:"longRange,omitempty"`
	Output    string `yaml:"output,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version:   CurrentConfigVersion,
		Language:  "en",
		LongRange: procvar.LongSafe.String(),
		Output:    "text",
	}
}

// Load reads a Config from a file path. Empty fields keep their defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Language != "" && !slices.Contains(i18n.Languages(), c.Language) {
		return fmt.Errorf("unsupported language %q", c.Language)
	}
	if _, err := procvar.ParseLongRange(c.LongRange); err != nil {
		return err
	}
	if c.Output != "" && !slices.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("unsupported output format %q", c.Output)
	}
	return nil
}

// Options returns the engine options described by the configuration.
func (c *Config) Options() (procvar.Options, error) {
	lr, err := procvar.ParseLongRange(c.LongRange)
	if err != nil {
		return procvar.Options{}, err
	}
	return procvar.Options{LongRange: lr}, nil
}
