// Package config loads the backend configuration from a TOML file.
//
// All settings have working defaults; a missing config file is not an
// error. Command-line flags take precedence over file values.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// DefaultListenAddr is the address the backend binds when none is
// configured.
const DefaultListenAddr = "127.0.0.1:6969"

// Config holds the backend settings.
type Config struct {
	// ListenAddr is the address the transport listener binds to.
	ListenAddr string `toml:"listen_addr"`

	// LogLevel is the glog verbosity level (the value of the -v flag).
	// Empty leaves the verbosity at its default; the -v command-line
	// flag takes precedence over this setting.
	LogLevel string `toml:"log_level"`

	// File is an optional document to open at startup. When empty, an
	// ephemeral document is opened instead.
	File string `toml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		ListenAddr: DefaultListenAddr,
	}
}

// Load reads the configuration from path, applying defaults for missing
// fields. A nonexistent file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.LogLevel != "" {
		if n, err := strconv.Atoi(cfg.LogLevel); err != nil || n < 0 {
			return cfg, fmt.Errorf("config file %s: log_level %q is not a non-negative integer", path, cfg.LogLevel)
		}
	}
	return cfg, nil
}
