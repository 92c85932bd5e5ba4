// Package config provides application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"k8s.io/apimachinery/pkg/labels"

	"github.com/henderiw/shipzone/pkg/source"
	"github.com/henderiw/shipzone/pkg/zone"
)

// EnvPrefix is prepended to every environment variable, e.g. SHIPZONE_CATALOG.
const EnvPrefix = "SHIPZONE"

const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Catalog is the path of the JSON or YAML catalog file.
	// Env: SHIPZONE_CATALOG
	Catalog string `envconfig:"CATALOG" default:"ListOfShippingZipCodeRanges.json"`

	// Selector is a label selector applied to catalog entries.
	// Env: SHIPZONE_SELECTOR
	Selector string `envconfig:"SELECTOR"`

	// EmptyCatalog is the empty catalog policy, "empty" or "error".
	// Env: SHIPZONE_EMPTY_CATALOG (default: empty)
	EmptyCatalog string `envconfig:"EMPTY_CATALOG" default:"empty"`

	// LogLevel is the log verbosity level.
	// Env: SHIPZONE_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// LogFormat is the log output format (console or json).
	// Env: SHIPZONE_LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

// Load reads envFile, then the process environment. Load does not validate,
// call Validate once overrides are applied.
func Load(envFile string) (EnvConfig, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return EnvConfig{}, fmt.Errorf("load env file: %w", err)
	}
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("process env: %w", err)
	}
	return cfg, nil
}

// LoadDotEnv loads environment variables from a .env file.
// If path is empty, it loads from ".env" in the current directory and a
// missing file is not an error. A named path must exist.
func LoadDotEnv(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return godotenv.Load(".env")
	}
	return godotenv.Load(path)
}

func (c EnvConfig) Validate() error {
	if _, err := c.EmptyPolicy(); err != nil {
		return err
	}
	if _, err := c.LabelSelector(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q, expected %q or %q", c.LogFormat, LogFormatConsole, LogFormatJSON)
	}
	return nil
}

func (c EnvConfig) CatalogPath() string {
	if c.Catalog == "" {
		return source.DefaultFile
	}
	return c.Catalog
}

func (c EnvConfig) EmptyPolicy() (zone.EmptyPolicy, error) {
	return zone.ParseEmptyPolicy(strings.ToLower(c.EmptyCatalog))
}

func (c EnvConfig) LabelSelector() (labels.Selector, error) {
	s, err := labels.Parse(c.Selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", c.Selector, err)
	}
	return s, nil
}
