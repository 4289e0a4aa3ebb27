package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the configuration file. They are also
// how inv-<name> extensions receive the configuration.
const (
	EnvDriver   = "INV_DRIVER"
	EnvStore    = "INV_STORE"
	EnvRedisURL = "INV_REDIS_URL"
	EnvKey      = "INV_KEY"
	EnvLocal    = "INV_LOCAL"
	EnvForeign  = "INV_FOREIGN"
	EnvRate     = "INV_RATE"
	EnvVerbose  = "INV_VERBOSE"
)

// Load reads a YAML config file and expands environment variables.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// Expand ${VAR} environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config yaml: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads config and applies default values.
func LoadWithDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Resolve builds the configuration of a run: the file at path when it
// exists (a missing file is fine unless required), then the INV_*
// environment variables, then overrides in order, then defaults. The result
// is validated.
func Resolve(path string, required bool, overrides ...func(*Config)) (*Config, error) {
	cfg, err := Load(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !required:
		cfg = &Config{}
	default:
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(cfg)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields with the INV_* environment variables that are
// set and not empty.
func (c *Config) ApplyEnv() error {
	override := func(dst *string, name string) {
		if v := os.Getenv(name); v != "" {
			*dst = v
		}
	}
	override(&c.Store.Driver, EnvDriver)
	override(&c.Store.Path, EnvStore)
	override(&c.Store.RedisURL, EnvRedisURL)
	override(&c.Store.Key, EnvKey)
	override(&c.Currency.Local, EnvLocal)
	override(&c.Currency.Foreign, EnvForeign)
	if v := os.Getenv(EnvRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid rate %q: %w", EnvRate, v, err)
		}
		c.Currency.Rate = rate
	}
	return nil
}

// Environ returns the configuration as INV_* assignments, in the form
// expected by exec.Cmd.Env.
func (c *Config) Environ() []string {
	return []string{
		EnvDriver + "=" + c.Store.Driver,
		EnvStore + "=" + c.Store.Path,
		EnvRedisURL + "=" + c.Store.RedisURL,
		EnvKey + "=" + c.Store.Key,
		EnvLocal + "=" + c.Currency.Local,
		EnvForeign + "=" + c.Currency.Foreign,
		EnvRate + "=" + strconv.FormatFloat(c.Currency.Rate, 'f', -1, 64),
	}
}
