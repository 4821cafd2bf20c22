package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure. It only supplies CLI
// defaults; the reader and aggregator never consult it directly.
type Config struct {
	Filters FilterConfig `json:"filters"`
	Output  OutputConfig `json:"output"`
}

// FilterConfig holds default file path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// OutputConfig holds default output options.
type OutputConfig struct {
	Format string `json:"format"` // console, json, csv, markdown
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Output: OutputConfig{
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
// An empty path checks the working directory and home for
// .churnstats.json; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		candidates := []string{".churnstats.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".churnstats.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
