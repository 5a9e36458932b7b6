package cli

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tool's file-based settings. Flags override these.
type Config struct {
	ExecutablePath string        `yaml:"executable_path"`
	ScriptPath     string        `yaml:"script_path"`
	Timeout        time.Duration `yaml:"-"`

	// RawTimeout is the timeout as written in the file, like "30s".
	RawTimeout string `yaml:"timeout"`
}

// LoadConfig reads a YAML config file. An empty path returns a zero config;
// a missing explicit path is an error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %q: %w", path, err)
	}

	if cfg.RawTimeout != "" {
		d, err := time.ParseDuration(cfg.RawTimeout)
		if err != nil {
			return nil, fmt.Errorf("config file %q: invalid timeout %q: %w", path, cfg.RawTimeout, err)
		}

		cfg.Timeout = d
	}

	return cfg, nil
}
