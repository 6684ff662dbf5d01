// Package config loads the configuration of the backend.
//
// Values are read, in order of increasing precedence, from defaults, an
// optional YAML config file and environment variables prefixed with BUDGET_.
// A .env file in the working directory is loaded into the environment first.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const envPrefix = "BUDGET"

type Config struct {
	Listen  string        `mapstructure:"listen"`
	BaseURL string        `mapstructure:"base_url"`
	GinMode string        `mapstructure:"gin_mode"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Pprof   PprofConfig   `mapstructure:"pprof"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Export  ExportConfig  `mapstructure:"export"`
}

type LogConfig struct {
	Format string `mapstructure:"format"` // "human" or "json". Empty selects by gin mode
	Level  string `mapstructure:"level"`  // zerolog level. Empty selects by gin mode
}

type StorageConfig struct {
	Backend string `mapstructure:"backend"` // "sqlite" or "memory"
	DSN     string `mapstructure:"dsn"`
}

type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type PprofConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ExportConfig struct {
	Locale string `mapstructure:"locale"` // BCP 47 tag used to format amounts in CSV exports
}

const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

var ErrInvalid = errors.New("invalid configuration")

var defaults = map[string]any{
	"listen":             ":8080",
	"base_url":           "http://localhost:8080",
	"gin_mode":           "release",
	"log.format":         "",
	"log.level":          "",
	"storage.backend":    BackendSQLite,
	"storage.dsn":        "data/budget.db",
	"cors.allow_origins": []string{},
	"pprof.enabled":      false,
	"metrics.enabled":    false,
	"export.locale":      "en-US",
}

// Load reads the configuration. configPath may be empty, in which case a
// config.yaml is searched in the working directory and ./config.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that can not be checked by decoding alone.
func (c *Config) Validate() error {
	if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
		return fmt.Errorf("%w: base_url %q is not a valid URL", ErrInvalid, c.BaseURL)
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendSQLite:
		if c.Storage.DSN == "" {
			return fmt.Errorf("%w: storage.dsn must be set for the sqlite backend", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: storage.backend must be %s or %s, not %q", ErrInvalid, BackendSQLite, BackendMemory, c.Storage.Backend)
	}

	if c.Log.Format != "" && c.Log.Format != "human" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format must be human or json, not %q", ErrInvalid, c.Log.Format)
	}

	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
		}
	}

	if _, err := language.Parse(c.Export.Locale); err != nil {
		return fmt.Errorf("%w: export.locale: %w", ErrInvalid, err)
	}

	return nil
}

// LogLevel returns the configured log level. Without one, debug selects
// zerolog.DebugLevel and zerolog.InfoLevel is used otherwise.
func (c *Config) LogLevel(debug bool) (zerolog.Level, error) {
	if c.Log.Level != "" {
		return zerolog.ParseLevel(c.Log.Level)
	}

	if debug {
		return zerolog.DebugLevel, nil
	}

	return zerolog.InfoLevel, nil
}

// Locale returns the parsed export locale.
func (c *Config) Locale() language.Tag {
	return language.Make(c.Export.Locale)
}

// URL returns the parsed base URL.
func (c *Config) URL() *url.URL {
	u, _ := url.Parse(c.BaseURL)
	return u
}
