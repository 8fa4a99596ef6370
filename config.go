package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	ExportDirectory string `toml:"export_directory"`
	Confirmations   bool   `toml:"confirmations"`
	ShowGrid        bool   `toml:"show_grid"`
	LogFile         string `toml:"log_file"`
	LogLevel        string `toml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		ExportDirectory: "",
		Confirmations:   true,
		ShowGrid:        true,
		LogLevel:        "info",
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "connectors", "config.toml")
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	config.ExportDirectory = expandHome(config.ExportDirectory)
	config.LogFile = expandHome(config.LogFile)
	if config.ExportDirectory != "" && !filepath.IsAbs(config.ExportDirectory) {
		if absPath, err := filepath.Abs(config.ExportDirectory); err == nil {
			config.ExportDirectory = absPath
		}
	}
	return config, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Level maps log_level onto slog. Unknown values fall back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetExportPath places filename in the export directory, creating it if
// needed.
func (c *Config) GetExportPath(filename string) (string, error) {
	if c.ExportDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDirectory, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	return filepath.Join(c.ExportDirectory, filename), nil
}
