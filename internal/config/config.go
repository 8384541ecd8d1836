package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is resolved in three layers: built-in defaults, an optional
// YAML file, then environment overrides. The OpenAI key never appears
// in the file; it is read from the environment only.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Insights InsightsConfig `yaml:"insights"`
	Timezone string         `yaml:"timezone"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type InsightsConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"-"`
}

const DefaultConfigPath = "bloom.yaml"

// Load reads configuration from the default path. A missing file is
// not an error; defaults plus environment overrides apply.
func Load() (*Config, error) {
	return LoadFromFile(DefaultConfigPath)
}

func LoadFromFile(path string) (*Config, error) {
	cfg := newDefaults()

	if err := loadYAMLFile(cfg, path); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDefaults() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080},
		Database: DatabaseConfig{Path: "data/bloom.db"},
		Insights: InsightsConfig{Model: "gpt-4o-mini"},
		Timezone: "Local",
	}
}

func loadYAMLFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BLOOM_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("BLOOM_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("BLOOM_TZ"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("BLOOM_INSIGHTS_MODEL"); v != "" {
		cfg.Insights.Model = v
	}
	cfg.Insights.APIKey = os.Getenv("OPENAI_API_KEY")
}

func (cfg *Config) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.Database.Path == "" {
		return fmt.Errorf("database path must not be empty")
	}
	return nil
}
