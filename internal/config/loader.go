package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a config file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the encoding from a file extension. Anything that is not
// .toml is read as YAML.
func FormatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q (want yaml or toml)", name)
	}
}

// Parse decodes data on top of the defaults, so a file only needs the
// settings it changes, and validates the result.
func Parse(data []byte, format Format) (GameConfig, error) {
	cfg := Default()

	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: cannot parse %s: %w", format, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes a config in the given format.
func Marshal(cfg GameConfig, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(cfg)
	default:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode %s: %w", format, err)
	}
	return data, nil
}

// ReadFile loads and validates a single config file.
func ReadFile(path string) (GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data, FormatFor(path))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load finds and reads the game config.
// Search order: customPath -> ~/.tui-flappy/flappy.{yaml,toml} ->
// ./configs/flappy.{yaml,toml} -> embedded default.
// It returns the path that was used, or "" for the embedded default.
// Only a broken customPath is an error; broken files on the search path are skipped.
func Load(customPath string) (GameConfig, string, error) {
	if customPath != "" {
		cfg, err := ReadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if cfg, err := ReadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := Parse(defaultYAML, FormatYAML)
	if err != nil {
		return Default(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if dir := userConfigDir(); dir != "" {
		paths = append(paths,
			filepath.Join(dir, "flappy.yaml"),
			filepath.Join(dir, "flappy.toml"),
		)
	}
	return append(paths,
		filepath.Join("configs", "flappy.yaml"),
		filepath.Join("configs", "flappy.toml"),
	)
}

// userConfigDir returns ~/.tui-flappy, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-flappy")
}
