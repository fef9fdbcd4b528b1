package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the renderer settings the glint command reads from
// its TOML file.
type Config struct {
	Level         string
	JustifyColumn int
	LimitValues   bool
	AddSource     bool
}

const defaultConfigPath = "~/.config/glint/config.toml"

// Default returns the built-in settings: everything emitted, metadata
// on its own line, value limiting on.
func Default() Config {
	return Config{
		Level:         "progress",
		JustifyColumn: 0,
		LimitValues:   true,
		AddSource:     false,
	}
}

// Load locates and parses the config file, falling back to defaults
// when it is missing. A missing file is not an error; a malformed one
// is.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Level         string `toml:"level"`
		JustifyColumn *int   `toml:"justify_column"`
		LimitValues   *bool  `toml:"limit_values"`
		AddSource     *bool  `toml:"add_source"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if level := strings.TrimSpace(raw.Level); level != "" {
		cfg.Level = level
	}
	if raw.JustifyColumn != nil && *raw.JustifyColumn >= 0 {
		cfg.JustifyColumn = *raw.JustifyColumn
	}
	if raw.LimitValues != nil {
		cfg.LimitValues = *raw.LimitValues
	}
	if raw.AddSource != nil {
		cfg.AddSource = *raw.AddSource
	}
	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
