package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file,
// optionally overridden by REVERBIFY_* environment variables.
type Config struct {
	Project  string         `toml:"project"`
	Server   ServerConfig   `toml:"server"`
	Store    StoreConfig    `toml:"store"`
	Upstream UpstreamConfig `toml:"upstream"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StoreConfig contains credential store connection settings.
//
// Driver selects the backend: "sqlite" or "redis".
type StoreConfig struct {
	Driver       string `toml:"driver"`
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
	Addr         string `toml:"addr"`
	Password     string `toml:"password"`
	DB           int    `toml:"db"`
	KeyPrefix    string `toml:"key_prefix"`
}

// UpstreamConfig contains settings for the upstream music service.
type UpstreamConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the upstream call timeout as a [time.Duration].
func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FromEnv overlays REVERBIFY_* environment variables onto the config.
//
// The hosting platform supplies configuration through the environment, so
// environment values take precedence over the file.
func (c *Config) FromEnv() *Config {
	if v := os.Getenv("REVERBIFY_PROJECT_ID"); v != "" {
		c.Project = v
	}
	if v := os.Getenv("REVERBIFY_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("REVERBIFY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("REVERBIFY_STORE_DRIVER"); v != "" {
		c.Store.Driver = v
	}
	if v := os.Getenv("REVERBIFY_STORE_PATH"); v != "" {
		c.Store.Path = v
	}
	if v := os.Getenv("REVERBIFY_STORE_ADDR"); v != "" {
		c.Store.Addr = v
	}
	if v := os.Getenv("REVERBIFY_STORE_PASSWORD"); v != "" {
		c.Store.Password = v
	}
	if v := os.Getenv("REVERBIFY_UPSTREAM_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("REVERBIFY_UPSTREAM_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.Upstream.TimeoutSeconds = secs
		}
	}
	return c
}
