package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds exporter configuration.
type Config struct {
	// DBPath is the path to the curriculum SQLite database.
	DBPath string `json:"db_path"`

	// OutputPath is the destination for the exported chunk file.
	OutputPath string `json:"output_path"`

	// Modules is the fixed list of module names reported in the
	// completion breakdown. Modules not in this list are still exported;
	// they just don't get a breakdown line.
	Modules []string `json:"modules,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DBPath:     filepath.Join("process", "curriculum.db"),
		OutputPath: filepath.Join("data", "curriculum_content.json"),
		Modules:    []string{"Architecture", "Solar", "Insulation"},
	}
}

// Load loads configuration from baseDir/currex.json.
// Returns the default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of the
// working directory.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, "currex.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence when set.
func Merge(base, overlay *Config) *Config {
	result := &Config{
		DBPath:     base.DBPath,
		OutputPath: base.OutputPath,
		Modules:    base.Modules,
	}
	if overlay.DBPath != "" {
		result.DBPath = overlay.DBPath
	}
	if overlay.OutputPath != "" {
		result.OutputPath = overlay.OutputPath
	}
	if len(overlay.Modules) > 0 {
		result.Modules = overlay.Modules
	}
	return result
}
