// Package config loads cubesim settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubesim/internal/logging"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
)

// DirName is the per-user directory holding config, state and database.
const DirName = ".cubesim"

// Config holds all user-tunable settings.
type Config struct {
	DBPath         string       `yaml:"db_path"`
	StatePath      string       `yaml:"state_path"`
	ScrambleLength int          `yaml:"scramble_length"`
	LogMode        string       `yaml:"log_mode"`
	Server         ServerConfig `yaml:"server"`
	Play           PlayConfig   `yaml:"play"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PlayConfig configures the terminal player.
type PlayConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// Dir returns ~/.cubesim, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, DirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// Default returns settings rooted at dir.
func Default(dir string) *Config {
	return &Config{
		DBPath:         filepath.Join(dir, "cubesim.db"),
		StatePath:      filepath.Join(dir, "state.json"),
		ScrambleLength: scramble.DefaultLength,
		LogMode:        logging.ModeDev.String(),
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 5 * time.Second,
		},
		Play: PlayConfig{
			Delay: 400 * time.Millisecond,
		},
	}
}

// Load reads path over the defaults. An empty path means
// ~/.cubesim/config.yaml; a missing file is not an error.
func Load(path string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	cfg := Default(dir)

	if path == "" {
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.Decode(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML data onto cfg and validates the result.
func (c *Config) Decode(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return c.Validate()
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if c.ScrambleLength <= 0 {
		return fmt.Errorf("scramble_length must be positive, got %d", c.ScrambleLength)
	}
	if _, err := logging.ParseMode(c.LogMode); err != nil {
		return err
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Play.Delay < 0 {
		return fmt.Errorf("play.delay must not be negative, got %s", c.Play.Delay)
	}
	return nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
