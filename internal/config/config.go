// Package config provides configuration management for harnesspair.
//
// Values are layered: defaults, then the config file, then HARNESSPAIR_*
// environment variables, then command line flags (applied by the caller).
//
// Config file locations (priority order):
//  1. $HARNESSPAIR_CONFIG
//  2. ./harnesspair.yaml
//  3. $XDG_CONFIG_HOME/harnesspair/config.yaml
//  4. ~/.config/harnesspair/config.yaml
//  5. /etc/harnesspair/config.yaml
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDatabasePath      = "./dbs.db"
	DefaultAddr              = ":3000"
	DefaultAttemptsPerResult = 100
	DefaultDebounce          = 500 * time.Millisecond
	DefaultLogLevel          = "info"
)

// Load finds and loads the config file, or returns defaults if none found.
// Environment overrides are applied in both cases.
func Load() (*Config, string, error) {
	path := FindConfigPath()

	if path == "" {
		cfg := DefaultConfig()
		if err := cfg.applyEnv(); err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = Duration(10 * time.Second)
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = Duration(30 * time.Second)
	}
	if c.Generation.AttemptsPerResult == 0 {
		c.Generation.AttemptsPerResult = DefaultAttemptsPerResult
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = Duration(DefaultDebounce)
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// EnvPrefix is prepended to every environment override
const EnvPrefix = "HARNESSPAIR"

// applyEnv overrides fields from HARNESSPAIR_* variables, e.g.
// HARNESSPAIR_DATABASE_PATH or HARNESSPAIR_GENERATION_SEED
func (c *Config) applyEnv() error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	keys := []string{
		"database.path",
		"server.addr",
		"server.read_timeout",
		"server.write_timeout",
		"generation.attempts_per_result",
		"generation.seed",
		"watch.enabled",
		"watch.debounce",
		"log.level",
		"log.development",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if v.IsSet("database.path") {
		c.Database.Path = v.GetString("database.path")
	}
	if v.IsSet("server.addr") {
		c.Server.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.read_timeout") {
		c.Server.ReadTimeout = Duration(v.GetDuration("server.read_timeout"))
	}
	if v.IsSet("server.write_timeout") {
		c.Server.WriteTimeout = Duration(v.GetDuration("server.write_timeout"))
	}
	if v.IsSet("generation.attempts_per_result") {
		c.Generation.AttemptsPerResult = v.GetInt("generation.attempts_per_result")
	}
	if v.IsSet("generation.seed") {
		seed := v.GetUint64("generation.seed")
		c.Generation.Seed = &seed
	}
	if v.IsSet("watch.enabled") {
		c.Watch.Enabled = v.GetBool("watch.enabled")
	}
	if v.IsSet("watch.debounce") {
		c.Watch.Debounce = Duration(v.GetDuration("watch.debounce"))
	}
	if v.IsSet("log.level") {
		c.Log.Level = v.GetString("log.level")
	}
	if v.IsSet("log.development") {
		c.Log.Development = v.GetBool("log.development")
	}
	return nil
}

// Validate rejects settings the rest of the program cannot work with
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Generation.AttemptsPerResult <= 0 {
		return fmt.Errorf("generation.attempts_per_result must be positive, got %d", c.Generation.AttemptsPerResult)
	}
	if c.Watch.Debounce.Duration() < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}

// Summary returns a human-readable config summary
func (c *Config) Summary() string {
	seed := "random"
	if c.Generation.Seed != nil {
		seed = fmt.Sprintf("%d", *c.Generation.Seed)
	}
	summary := fmt.Sprintf("Database: %s, Listen: %s\n", c.Database.Path, c.Server.Addr)
	summary += fmt.Sprintf("Attempts per result: %d, Seed: %s, Watch: %v", c.Generation.AttemptsPerResult, seed, c.Watch.Enabled)
	return summary
}
