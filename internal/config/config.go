// Package config loads the calculator configuration from an optional TOML
// file and the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Server    ServerConfig    `toml:"server"`
	History   HistoryConfig   `toml:"history"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// GeneralConfig holds process-wide settings
type GeneralConfig struct {
	LogLevel    string `toml:"log_level"`
	Development bool   `toml:"development"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// HistoryConfig selects where calculation history is persisted
type HistoryConfig struct {
	Backend     string `toml:"backend"`
	Path        string `toml:"path"`
	LoadOnStart bool   `toml:"load_on_start"`
	SaveOnExit  bool   `toml:"save_on_exit"`
}

// TelemetryConfig controls the OpenTelemetry exporters
type TelemetryConfig struct {
	ServiceName string `toml:"service_name"`
	OTLPEnabled bool   `toml:"otlp_enabled"`
	OTLPLogs    bool   `toml:"otlp_logs"`
}

// Duration wraps time.Duration for TOML strings like "5s"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// EnvConfigPath names the variable consulted when no path is given.
const EnvConfigPath = "CALC_CONFIG"

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path (or $CALC_CONFIG when path is empty), then applies
// environment overrides and defaults. A missing file is only an error when
// it was named explicitly.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		path = "calc.toml"
	}
	path = os.ExpandEnv(path)

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// applyEnv overrides file values with CALC_* and OTEL_* variables.
func (c *Config) applyEnv() error {
	strVars := map[string]*string{
		"CALC_LOG_LEVEL":       &c.General.LogLevel,
		"CALC_ADDR":            &c.Server.Addr,
		"CALC_HISTORY_BACKEND": &c.History.Backend,
		"CALC_HISTORY_PATH":    &c.History.Path,
		"OTEL_SERVICE_NAME":    &c.Telemetry.ServiceName,
	}
	for name, dst := range strVars {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	boolVars := map[string]*bool{
		"CALC_DEVELOPMENT":  &c.General.Development,
		"CALC_OTLP_ENABLED": &c.Telemetry.OTLPEnabled,
		"CALC_OTLP_LOGS":    &c.Telemetry.OTLPLogs,
		"CALC_HISTORY_LOAD": &c.History.LoadOnStart,
		"CALC_HISTORY_SAVE": &c.History.SaveOnExit,
	}
	for name, dst := range boolVars {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", name, v, err)
		}
		*dst = b
	}

	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 5 * time.Second
	}
	if c.History.Backend == "" {
		c.History.Backend = "file"
	}
	if c.History.Path == "" {
		switch c.History.Backend {
		case "sqlite":
			c.History.Path = "./data/history.db"
		default:
			c.History.Path = "history.txt"
		}
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = "calculator"
	}
}
