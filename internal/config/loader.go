package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load loads Flappy Dragon configuration.
// Search order: customPath -> ~/.dragon/configs/dragon.yaml -> ./configs/dragon.yaml -> embedded default
//
// Files are decoded over DefaultConfig, so a file only needs the keys it
// changes. Files ending in .toml are decoded as TOML, everything else as YAML.
func Load(customPath string) (DragonConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		if err != nil {
			return DragonConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DragonConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dragon.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "dragon.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := decode("dragon.yaml", defaultDragonYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing, unreadable or invalid
// files are skipped.
func tryLoad(path string) (DragonConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DragonConfig{}, false
	}
	cfg, err := decode(path, data)
	if err != nil || cfg.Validate() != nil {
		return DragonConfig{}, false
	}
	return cfg, true
}

// decode parses data over the defaults, picking the format from path.
func decode(path string, data []byte) (DragonConfig, error) {
	cfg := DefaultConfig()
	if isTOML(path) {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as "yaml" or "toml".
func Marshal(cfg DragonConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "yaml", "yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("config: cannot encode yaml: %w", err)
		}
		return data, nil
	case "toml":
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("config: cannot encode toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dragon", "configs", filename)
}
