package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the puzzle configuration.
// Search order: customPath -> ~/.termo/termo.yaml -> ./configs/termo.yaml -> embedded default.
// Files are layered over the built-in defaults, so they only need the keys
// they change.
func Load(customPath string) (TermoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TermoConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return TermoConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("termo.yaml"), filepath.Join("configs", "termo.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultTermoYAML)
	if err != nil {
		return DefaultTermoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (TermoConfig, error) {
	cfg := DefaultTermoConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TermoConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TermoConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".termo", filename)
}
