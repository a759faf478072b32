package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up beside the executable.
const FileName = "statsdash.yaml"

// Defaults applied when the config file is absent or leaves a field empty.
const (
	DefaultDatabaseFile = "stats.db"
	DefaultLogFile      = "statsdash.log"
	DefaultLogLevel     = "info"
)

// Config represents the statsdash configuration
type Config struct {
	DatabasePath string `yaml:"database_path"`
	LogFile      string `yaml:"log_file"`
	LogLevel     string `yaml:"log_level"` // debug, info, warn, error
	Color        *bool  `yaml:"color,omitempty"`

	// dir is the directory relative paths resolve against.
	dir string
}

// Default returns the configuration used when no config file exists in dir.
func Default(dir string) *Config {
	return &Config{
		DatabasePath: DefaultDatabaseFile,
		LogFile:      DefaultLogFile,
		LogLevel:     DefaultLogLevel,
		dir:          dir,
	}
}

// LoadConfig reads statsdash.yaml from the specified directory.
// Returns an error wrapping os.ErrNotExist if the file is missing.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default(dir)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

// Resolve loads the config from dir, falling back to defaults when the file
// does not exist. Parse errors are still returned.
func Resolve(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		return Default(dir), nil
	}
	return cfg, err
}

// SaveConfig writes statsdash.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ProgramDir returns the directory holding the running executable.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Dir returns the directory the config was resolved in.
func (c *Config) Dir() string {
	return c.dir
}

// Path returns the config file path for this config.
func (c *Config) Path() string {
	return filepath.Join(c.dir, FileName)
}

// DBPath returns the absolute database path.
func (c *Config) DBPath() string {
	return c.resolve(c.DatabasePath)
}

// LogPath returns the absolute log file path.
func (c *Config) LogPath() string {
	return c.resolve(c.LogFile)
}

// ColorEnabled reports whether coloured output is on (default true).
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.dir, p)
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = DefaultDatabaseFile
	}
	if c.LogFile == "" {
		c.LogFile = DefaultLogFile
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
