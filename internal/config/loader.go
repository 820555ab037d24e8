package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in config directories.
const ConfigFile = "klotski.yaml"

// LoadKlotski loads Klotski configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/klotski/klotski.yaml ->
// ~/.klotski/configs/klotski.yaml -> ./configs/klotski.yaml -> embedded default.
// The result is always validated.
func LoadKlotski(customPath string) (KlotskiConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultKlotskiConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		cfg.Validate()
		return cfg, nil
	}

	for _, p := range searchPaths() {
		if cfg, ok := tryLoad(p); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultKlotskiConfig()
	if err := yaml.Unmarshal(defaultKlotskiYAML, &cfg); err != nil {
		return DefaultKlotskiConfig(), nil // Fallback to hardcoded if embed fails
	}
	cfg.Validate()
	return cfg, nil
}

// searchPaths lists the non-custom config locations in priority order.
func searchPaths() []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(filepath.Join("klotski", ConfigFile)); err == nil {
		paths = append(paths, p)
	}
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// tryLoad reads a config file, ignoring missing or malformed files.
func tryLoad(path string) (KlotskiConfig, bool) {
	cfg := DefaultKlotskiConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	cfg.Validate()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".klotski", "configs", filename)
}

// UserConfigDir returns the XDG directory new config files should be written to.
func UserConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "klotski")
}

// ResolvePath returns the config file LoadKlotski would read first, or an
// empty string when only the embedded defaults apply.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	for _, p := range searchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// WriteDefault writes the embedded default config into dir and returns the
// file path. An existing file is left alone and reported with os.ErrExist.
func WriteDefault(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	p := filepath.Join(dir, ConfigFile)
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return p, err
	}
	defer f.Close()
	if _, err := f.Write(defaultKlotskiYAML); err != nil {
		return p, fmt.Errorf("failed to write config %s: %w", p, err)
	}
	return p, nil
}
