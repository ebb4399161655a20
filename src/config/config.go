// Package config loads server configuration: YAML file with defaults, then
// environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// PortEnv overrides the listen port when set to a decimal 16-bit unsigned
// value; any other value falls back to the default port.
const PortEnv = "RUST_API_PORT"

// DefaultPort is used when no file or environment value applies.
const DefaultPort = 8080

// Config holds all settings for the HTTP server.
type Config struct {
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
	LogLevel    string `yaml:"log_level"` // debug, info, warn, error (default: info)
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		BindAddress: "0.0.0.0",
		Port:        DefaultPort,
		LogLevel:    "info",
	}
}

// Load reads a YAML config file, applies it over the defaults, then applies
// environment overrides. A missing file is not an error: defaults plus
// environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv(PortEnv); ok {
		if port, err := strconv.ParseUint(v, 10, 16); err == nil {
			c.Port = int(port)
		} else {
			c.Port = DefaultPort
		}
	}
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.BindAddress, c.Port)
}

// SlogLevel maps the configured log level onto a slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
