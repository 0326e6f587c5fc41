// Package config loads artmetrics settings: embedded defaults, an optional
// YAML file, then ARTMETRICS_* variables from the environment or a .env file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

// EnvFile is read for ARTMETRICS_* variables when present in the working directory.
const EnvFile = ".env"

// Config holds every setting of the CLI.
type Config struct {
	Fetch  FetchConfig  `yaml:"fetch"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// FetchConfig configures article downloads.
type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	MaxBytes          int64         `yaml:"max_bytes"`
	MaxRedirects      int           `yaml:"max_redirects"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

// InputConfig locates the work list and its columns.
type InputConfig struct {
	Path      string `yaml:"path"`
	IDColumn  string `yaml:"id_column"`
	URLColumn string `yaml:"url_column"`
}

// OutputConfig controls where results go.
type OutputConfig struct {
	Path        string `yaml:"path"`
	ArticlesDir string `yaml:"articles_dir"`
	Format      string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultData, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return &cfg
}

// Load builds the configuration from defaults, the YAML file at path (when
// not empty), EnvFile and the process environment.
func Load(path string) (*Config, error) {
	dotenv, err := godotenv.Read(EnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", EnvFile, err)
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	return load(path, lookup)
}

func load(path string, lookup func(string) (string, bool)) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides fields from ARTMETRICS_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"ARTMETRICS_USER_AGENT":   &c.Fetch.UserAgent,
		"ARTMETRICS_INPUT":        &c.Input.Path,
		"ARTMETRICS_ID_COLUMN":    &c.Input.IDColumn,
		"ARTMETRICS_URL_COLUMN":   &c.Input.URLColumn,
		"ARTMETRICS_OUTPUT":       &c.Output.Path,
		"ARTMETRICS_ARTICLES_DIR": &c.Output.ArticlesDir,
		"ARTMETRICS_FORMAT":       &c.Output.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("ARTMETRICS_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ARTMETRICS_TIMEOUT: %w", err)
		}
		c.Fetch.Timeout = d
	}
	if v, ok := lookup("ARTMETRICS_REQUESTS_PER_SECOND"); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("ARTMETRICS_REQUESTS_PER_SECOND: %w", err)
		}
		c.Fetch.RequestsPerSecond = rps
	}
	return nil
}

// Validate rejects settings the commands cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Fetch.Timeout <= 0:
		return fmt.Errorf("fetch.timeout must be positive, got %s", c.Fetch.Timeout)
	case c.Fetch.MaxBytes <= 0:
		return fmt.Errorf("fetch.max_bytes must be positive, got %d", c.Fetch.MaxBytes)
	case c.Fetch.RequestsPerSecond < 0:
		return fmt.Errorf("fetch.requests_per_second must not be negative, got %g", c.Fetch.RequestsPerSecond)
	case c.Input.IDColumn == "" || c.Input.URLColumn == "":
		return errors.New("input.id_column and input.url_column must be set")
	}

	switch c.Output.Format {
	case "", "terminal", "plain", "json":
	default:
		return fmt.Errorf("unknown output format %q (want terminal, plain or json)", c.Output.Format)
	}
	return nil
}
