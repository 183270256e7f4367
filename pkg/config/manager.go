package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Manager loads console configuration.
type Manager interface {
	Load() (Config, error)
	// Path returns the YAML file the manager reads, after ~ expansion.
	Path() string
}

// DefaultManager layers defaults, the YAML file, a .env file and the
// process environment, later layers overriding earlier ones.
type DefaultManager struct {
	path   string
	dotenv string
}

// ManagerOption configures a DefaultManager.
type ManagerOption func(*DefaultManager)

// WithConfigPath reads path instead of DefaultConfigPath.
func WithConfigPath(path string) ManagerOption {
	return func(m *DefaultManager) {
		if path != "" {
			m.path = path
		}
	}
}

// WithDotEnv reads the given .env file. An empty name disables .env loading.
func WithDotEnv(name string) ManagerOption {
	return func(m *DefaultManager) {
		m.dotenv = name
	}
}

// NewManager creates a manager reading DefaultConfigPath and ./.env
func NewManager(opts ...ManagerOption) Manager {
	m := &DefaultManager{
		path:   DefaultConfigPath,
		dotenv: ".env",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *DefaultManager) Path() string {
	expanded, err := homedir.Expand(m.path)
	if err != nil {
		return m.path
	}
	return expanded
}

// Load builds the effective configuration.
func (m *DefaultManager) Load() (Config, error) {
	cfg := Default()

	if err := m.loadFile(&cfg); err != nil {
		return Config{}, err
	}

	if m.dotenv != "" {
		// godotenv.Load never overrides variables already set in the process
		if err := godotenv.Load(m.dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", m.dotenv, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (m *DefaultManager) loadFile(cfg *Config) error {
	path := m.Path()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
