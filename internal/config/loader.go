package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source describes where a loaded configuration came from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/doodle.yaml"

// LoadDoodle loads the doodle configuration.
// Search order: customPath -> ~/.doodle/configs/doodle.yaml -> ./configs/doodle.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when unusable.
func LoadDoodle(customPath string) (DoodleConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DoodleConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DoodleConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DoodleConfig{}, SourceCustom, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("doodle.yaml"); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, SourceUser, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(localConfigPath); ok {
		return cfg, SourceLocal, nil
	}

	// Use embedded default YAML
	cfg, err := decode(defaultDoodleYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultDoodleConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// tryFile loads a config file, reporting false if it is missing or unusable.
func tryFile(path string) (DoodleConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DoodleConfig{}, false
	}
	cfg, err := decode(data)
	if err != nil || cfg.Validate() != nil {
		return DoodleConfig{}, false
	}
	return cfg, true
}

// decode unmarshals YAML on top of the built-in defaults.
func decode(data []byte) (DoodleConfig, error) {
	cfg := DefaultDoodleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DoodleConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".doodle", "configs", filename)
}
