// Package config loads quotientpow settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/quotientpow/internal/exercise"
)

const appName = "quotientpow"

// Environment variables that override file settings.
const (
	EnvDB       = "QUOTIENTPOW_DB"
	EnvVariant  = "QUOTIENTPOW_VARIANT"
	EnvLogLevel = "QUOTIENTPOW_LOG_LEVEL"
	EnvLogFile  = "QUOTIENTPOW_LOG_FILE"
)

// Config holds all application configuration.
type Config struct {
	DBPath  string    `yaml:"db_path"`
	Variant string    `yaml:"variant"`
	Log     LogConfig `yaml:"log"`
}

// LogConfig controls the JSON log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DataDir returns $XDG_DATA_HOME/quotientpow, falling back to
// ~/.local/share/quotientpow.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName), nil
}

// DefaultPath returns $XDG_CONFIG_HOME/quotientpow/config.yaml, falling back
// to ~/.config/quotientpow/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "config.yaml"), nil
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	dir, err := DataDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DBPath:  filepath.Join(dir, appName+".db"),
		Variant: exercise.VariantPaged.Name,
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dir, appName+".log"),
		},
	}, nil
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment, in that order. An empty path reads the default file if it
// exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	explicit := path != ""
	if !explicit {
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := validateFile(data); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.DBPath = getEnv(EnvDB, c.DBPath)
	c.Variant = getEnv(EnvVariant, c.Variant)
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
	c.Log.File = getEnv(EnvLogFile, c.Log.File)
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path cannot be empty")
	}
	if _, err := exercise.VariantByName(c.Variant); err != nil {
		return err
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// ExerciseVariant returns the configured variant.
func (c *Config) ExerciseVariant() exercise.Variant {
	v, err := exercise.VariantByName(c.Variant)
	if err != nil {
		return exercise.VariantPaged
	}
	return v
}

// LogLevel returns the configured slog level.
func (c *Config) LogLevel() slog.Level {
	l, err := parseLevel(c.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return l
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
