package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	HistoryDB string `toml:"history_db"`
	Viewer    string `toml:"viewer"`    // image viewer command, "" = system default
	Show      bool   `toml:"show"`      // open the chart after saving
	LogLevel  string `toml:"log_level"` // debug, info, warn, error
}

// Load reads the config file over the defaults. On error the returned
// Config still holds usable defaults, so callers that can run without the
// file may warn and carry on.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Defaults(""), err
	}
	return load(home)
}

// Defaults returns the built-in settings for home. Without a home
// directory there is nowhere to keep history and HistoryDB is empty.
func Defaults(home string) *Config {
	cfg := &Config{LogLevel: "warn"}
	if home != "" {
		cfg.HistoryDB = filepath.Join(home, ".config", "accplot", "history.db")
	}
	return cfg
}

func load(home string) (*Config, error) {
	cfg := Defaults(home)

	cfgPath := Path(home)
	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return Defaults(home), fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.HistoryDB = expandHome(cfg.HistoryDB, home)
	cfg.Viewer = expandHome(cfg.Viewer, home)

	return cfg, nil
}

// Path is the location of the config file for the given home directory.
func Path(home string) string {
	return filepath.Join(home, ".config", "accplot", "config.toml")
}

func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
