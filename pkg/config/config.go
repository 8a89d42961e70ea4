// Package config loads the storefront configuration from a YAML file over
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names for the persisted device store.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Admin   AdminConfig   `yaml:"admin"`
	Latency LatencyConfig `yaml:"latency"`
	Logging LoggingConfig `yaml:"logging"`
	Seed    []SeedProduct `yaml:"seed"`
}

type StoreConfig struct {
	Backend   string `yaml:"backend"`
	Dir       string `yaml:"dir"`
	RedisURL  string `yaml:"redisUrl"`
	Namespace string `yaml:"namespace"`
}

// AdminConfig feeds the privilege predicate: an exact administrative address
// plus a domain suffix.
type AdminConfig struct {
	Email  string `yaml:"email"`
	Domain string `yaml:"domain"`
}

// LatencyConfig simulates the network round-trips the mock flows replace.
type LatencyConfig struct {
	Auth     Duration `yaml:"auth"`
	Checkout Duration `yaml:"checkout"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SeedProduct is a starter catalog entry applied when the product snapshot is
// empty.
type SeedProduct struct {
	Name        string  `yaml:"name"`
	Price       float64 `yaml:"price"`
	Image       string  `yaml:"image"`
	Description string  `yaml:"description"`
	Category    string  `yaml:"category"`
}

// Duration wraps time.Duration so it can be written as "500ms" in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   BackendMemory,
			Dir:       "./data",
			Namespace: "storefront",
		},
		Admin: AdminConfig{
			Email:  "admin@luxe.com",
			Domain: "admin.com",
		},
		Latency: LatencyConfig{
			Auth:     Duration(500 * time.Millisecond),
			Checkout: Duration(2 * time.Second),
		},
		Logging: LoggingConfig{
			Level: logLevelFromEnv(),
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

func logLevelFromEnv() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "INFO"
}
