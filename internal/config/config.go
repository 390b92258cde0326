// Package config resolves designlab settings from defaults, an optional YAML
// file, a .env file and DESIGNLAB_* environment variables. Command-line flags
// are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultLearner is the learner ID used when none is configured.
const DefaultLearner = "default"

// Config holds all designlab settings.
type Config struct {
	// DBPath is the SQLite file. Empty means the XDG default.
	DBPath string `yaml:"db"`

	// LearnerID scopes stored progress.
	LearnerID string `yaml:"learner"`

	// CatalogPath is an optional YAML catalog replacing the built-in one.
	CatalogPath string `yaml:"catalog"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// Default returns a Config with built-in defaults.
func Default() Config {
	return Config{
		LearnerID: DefaultLearner,
		LogLevel:  "warn",
	}
}

// Load builds a Config. path names a YAML config file; when empty the default
// location is tried and silently skipped if absent. envFile names a dotenv
// file loaded into the process environment (existing variables win); when
// empty ".env" in the working directory is tried.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	if err := loadEnvFile(envFile); err != nil {
		return Config{}, err
	}
	cfg.mergeEnv()

	if cfg.LearnerID == "" {
		cfg.LearnerID = DefaultLearner
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/designlab/config.yaml, falling back to
// ~/.config/designlab/config.yaml.
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "designlab", "config.yaml"), nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	c.overlay(fileCfg)
	return nil
}

func (c *Config) mergeEnv() {
	c.overlay(Config{
		DBPath:      os.Getenv("DESIGNLAB_DB"),
		LearnerID:   os.Getenv("DESIGNLAB_LEARNER"),
		CatalogPath: os.Getenv("DESIGNLAB_CATALOG"),
		LogLevel:    os.Getenv("DESIGNLAB_LOG_LEVEL"),
		LogFile:     os.Getenv("DESIGNLAB_LOG_FILE"),
	})
}

// overlay copies every non-empty field of o onto c.
func (c *Config) overlay(o Config) {
	if o.DBPath != "" {
		c.DBPath = o.DBPath
	}
	if o.LearnerID != "" {
		c.LearnerID = o.LearnerID
	}
	if o.CatalogPath != "" {
		c.CatalogPath = o.CatalogPath
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}
