// Package config loads vhdlparser.toml. Values come, lowest priority first,
// from built-in defaults, the config file, VHDLPARSER_* environment
// variables and finally command-line flags (applied by the CLI).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"vhdlparser/internal/parser"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
	"vhdlparser/internal/vhdl"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "vhdlparser.toml"

// EnvPrefix prefixes environment overrides, e.g. VHDLPARSER_MAX_DEPTH or
// VHDLPARSER_CACHE_ENABLED.
const EnvPrefix = "VHDLPARSER"

type Config struct {
	Standard       string      `mapstructure:"standard" toml:"standard"`
	Encoding       string      `mapstructure:"encoding" toml:"encoding"`
	MaxDepth       int         `mapstructure:"max_depth" toml:"max_depth"`
	MaxDiagnostics int         `mapstructure:"max_diagnostics" toml:"max_diagnostics"`
	Pretty         bool        `mapstructure:"pretty" toml:"pretty"`
	Jobs           int         `mapstructure:"jobs" toml:"jobs"`
	Cache          CacheConfig `mapstructure:"cache" toml:"cache"`
	Log            LogConfig   `mapstructure:"log" toml:"log"`

	// Path is the file the values were read from; empty when none was found.
	Path string `mapstructure:"-" toml:"-"`
}

type CacheConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled"`
	Dir     string `mapstructure:"dir" toml:"dir"` // empty = $XDG_CACHE_HOME/vhdlparser
}

type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level"`   // debug|info|warn|error
	Format string `mapstructure:"format" toml:"format"` // console|json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Standard:       token.DefaultStandard.String(),
		Encoding:       source.EncodingAuto.String(),
		MaxDepth:       parser.DefaultMaxDepth,
		MaxDiagnostics: 100,
		Pretty:         false,
		Jobs:           0,
		Cache:          CacheConfig{Enabled: false},
		Log:            LogConfig{Level: "warn", Format: "console"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("standard", d.Standard)
	v.SetDefault("encoding", d.Encoding)
	v.SetDefault("max_depth", d.MaxDepth)
	v.SetDefault("max_diagnostics", d.MaxDiagnostics)
	v.SetDefault("pretty", d.Pretty)
	v.SetDefault("jobs", d.Jobs)
	v.SetDefault("cache.enabled", d.Cache.Enabled)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// Load reads configPath, or when it is empty the nearest vhdlparser.toml
// at or above startDir. No file at all is not an error.
func Load(configPath, startDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath == "" {
		found, ok, err := Find(startDir)
		if err != nil {
			return nil, err
		}
		if ok {
			configPath = found
		}
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.Path = configPath
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every value that has a restricted range.
func (c *Config) Validate() error {
	var errs []error
	if _, err := token.ParseStandard(c.Standard); err != nil {
		errs = append(errs, err)
	}
	if _, err := source.ParseEncoding(c.Encoding); err != nil {
		errs = append(errs, err)
	}
	if c.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth))
	}
	if c.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("max_diagnostics must not be negative, got %d", c.MaxDiagnostics))
	}
	if c.Jobs < 0 {
		errs = append(errs, fmt.Errorf("jobs must not be negative, got %d", c.Jobs))
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	if err := errors.Join(errs...); err != nil {
		if c.Path != "" {
			return fmt.Errorf("%s: %w", c.Path, err)
		}
		return err
	}
	return nil
}

// ParseOptions converts the config into pipeline options. Call Validate
// first; invalid values fall back to their defaults here.
func (c *Config) ParseOptions() vhdl.Options {
	std, err := token.ParseStandard(c.Standard)
	if err != nil {
		std = token.DefaultStandard
	}
	enc, err := source.ParseEncoding(c.Encoding)
	if err != nil {
		enc = source.EncodingAuto
	}
	return vhdl.Options{
		Standard:       std,
		Encoding:       enc,
		MaxDepth:       c.MaxDepth,
		MaxDiagnostics: c.MaxDiagnostics,
	}
}
