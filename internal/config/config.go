// Package config loads the location and reading options of an HVSC
// collection from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/hvscmeta/internal/charset"
	"github.com/simonhull/hvscmeta/internal/types"
)

// EnvPrefix prefixes the environment variables read by Load, e.g. HVSC_ROOT.
const EnvPrefix = "HVSC"

// Document locations relative to the collection root.
var (
	DefaultSTIL        = filepath.Join("DOCUMENTS", "STIL.txt")
	DefaultBUGlist     = filepath.Join("DOCUMENTS", "BUGlist.txt")
	DefaultSonglengths = filepath.Join("DOCUMENTS", "Songlengths.md5")
)

// Config describes where a collection lives and how to read it.
type Config struct {
	// Root is the C64Music directory.
	Root string `yaml:"root" envconfig:"ROOT"`

	// Document paths. Relative paths are resolved against Root; empty
	// paths select the standard DOCUMENTS/ files.
	STIL        string `yaml:"stil" envconfig:"STIL"`
	BUGlist     string `yaml:"buglist" envconfig:"BUGLIST"`
	Songlengths string `yaml:"songlengths" envconfig:"SONGLENGTHS"`

	// Encoding of header strings and catalog text: "latin1", "windows-1252" or "utf8".
	Encoding string `yaml:"encoding" envconfig:"ENCODING"`
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	StrictTimestamps bool `yaml:"strict_timestamps" envconfig:"STRICT_TIMESTAMPS"`
}

// Default returns a configuration with the default encoding and log level
// and no root.
func Default() *Config {
	return &Config{
		Encoding: charset.Latin1,
		LogLevel: "warn",
	}
}

// Load reads the YAML file at path, if path is not empty, then applies
// HVSC_* environment variables on top and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &types.IOError{Op: "read", Path: path, Err: err}
		}
		if err := LoadYAML(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// LoadYAML decodes data into cfg. Keys missing from data keep their
// current values.
func LoadYAML(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if c.Root == "" && (c.STIL == "" || c.BUGlist == "" || c.Songlengths == "") {
		return errors.New("root is required unless stil, buglist and songlengths are all set")
	}
	if _, err := charset.Lookup(c.Encoding); err != nil {
		return fmt.Errorf("encoding: %w", err)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("log_level: unknown level %q", c.LogLevel)
	}
	return nil
}

// STILPath returns the location of STIL.txt.
func (c *Config) STILPath() string {
	return c.resolve(c.STIL, DefaultSTIL)
}

// BUGlistPath returns the location of BUGlist.txt.
func (c *Config) BUGlistPath() string {
	return c.resolve(c.BUGlist, DefaultBUGlist)
}

// SonglengthsPath returns the location of Songlengths.md5.
func (c *Config) SonglengthsPath() string {
	return c.resolve(c.Songlengths, DefaultSonglengths)
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	return hclog.LevelFromString(c.LogLevel)
}

func (c *Config) resolve(path, def string) string {
	if path == "" {
		path = def
	}
	if filepath.IsAbs(path) || c.Root == "" {
		return path
	}
	return filepath.Join(c.Root, path)
}
