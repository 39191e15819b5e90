// Package models defines data structures for configuration, pages, analyses and suppliers.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultDataset       = "Storeleads_shopify/all_japan_stores_unlimited.csv"
	DefaultMaxSuppliers  = 20
	DefaultTimeout       = 30 * time.Second
	DefaultUserAgent     = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	DefaultConfigName    = "supplier-matcher"
	EnvPrefix            = "SUPPLIER_MATCHER"
	SummaryFormatJSON    = "json"
	SummaryFormatYAML    = "yaml"
	DefaultSummaryFormat = SummaryFormatJSON
)

// Config holds runtime configuration for a matching run.
// Values are layered: defaults, config file, SUPPLIER_MATCHER_* env vars, then CLI flags.
type Config struct {
	Dataset       string        `mapstructure:"dataset"`
	OutputDir     string        `mapstructure:"output_dir"`
	MaxSuppliers  int           `mapstructure:"max_suppliers"`
	UserAgent     string        `mapstructure:"user_agent"`
	Timeout       time.Duration `mapstructure:"timeout"`
	SummaryFormat string        `mapstructure:"summary_format"`
	Fallback      bool          `mapstructure:"fallback"`
	AutoFallback  bool          `mapstructure:"auto_fallback"`
}

// LoadConfig reads configuration from path (optional) and the environment.
// An empty path looks for supplier-matcher.yaml in the working directory;
// a missing file there is not an error, a missing explicit path is.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataset", DefaultDataset)
	v.SetDefault("output_dir", ".")
	v.SetDefault("max_suppliers", DefaultMaxSuppliers)
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("summary_format", DefaultSummaryFormat)
	v.SetDefault("fallback", false)
	v.SetDefault("auto_fallback", false)
}

// Validate checks the values a run depends on.
func (c *Config) Validate() error {
	if c.MaxSuppliers < 1 {
		return fmt.Errorf("max_suppliers must be positive, got %d", c.MaxSuppliers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	switch strings.ToLower(c.SummaryFormat) {
	case SummaryFormatJSON, SummaryFormatYAML:
	default:
		return fmt.Errorf("summary_format must be 'json' or 'yaml', got: %s", c.SummaryFormat)
	}
	if strings.TrimSpace(c.Dataset) == "" && !c.Fallback {
		return fmt.Errorf("dataset is required unless fallback is enabled")
	}
	return nil
}
