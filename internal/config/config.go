package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds reel configuration stored at ~/.reel/config.
type Config struct {
	VisibleCount   int     `yaml:"visible_count"`
	CommitFraction float64 `yaml:"commit_fraction"`
	VimKeys        bool    `yaml:"vim_keys"`
	Mouse          bool    `yaml:"mouse"`
	Accent         string  `yaml:"accent,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		VisibleCount:   5,
		CommitFraction: 0.5,
		Mouse:          true,
	}
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".reel", "config")
}

// Load reads and parses the config file. A missing file is not an error:
// defaults apply. A present but unparseable or invalid file is.
func Load() (Config, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the window controller would refuse anyway,
// before any rendering attempt.
func (c Config) Validate() error {
	if c.VisibleCount < 1 {
		return fmt.Errorf("config: visible_count must be at least 1, got %d", c.VisibleCount)
	}
	if c.CommitFraction <= 0 || c.CommitFraction > 1 {
		return fmt.Errorf("config: commit_fraction must be in (0, 1], got %g", c.CommitFraction)
	}
	return nil
}

// Save writes the config to disk.
func (c Config) Save() error {
	path := Path()
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}
