package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hanoitower/pkg/errors"
)

// Cache backend names accepted in the config file.
const (
	CacheBackendFile   = "file"
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// Session store names accepted in the config file.
const (
	SessionStoreFile   = "file"
	SessionStoreMemory = "memory"
	SessionStoreMongo  = "mongo"
)

// Config holds the user configuration loaded from config.toml.
type Config struct {
	Cache   CacheConfig   `toml:"cache"`
	Session SessionConfig `toml:"session"`
	Serve   ServeConfig   `toml:"serve"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	Backend string      `toml:"backend"` // file, memory, redis, none
	Dir     string      `toml:"dir"`     // file backend: cache directory override
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// SessionConfig selects and configures the session store backend.
type SessionConfig struct {
	Store string      `toml:"store"` // file, memory, mongo
	Dir   string      `toml:"dir"`   // file backend: session directory override
	Mongo MongoConfig `toml:"mongo"`
}

// MongoConfig configures the mongo session store.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// ServeConfig configures the HTTP API server.
type ServeConfig struct {
	Addr string `toml:"addr"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Cache:   CacheConfig{Backend: CacheBackendFile},
		Session: SessionConfig{Store: SessionStoreFile},
		Serve:   ServeConfig{Addr: ":8080"},
	}
}

// ConfigPath returns the config file location using the XDG standard
// (~/.config/hanoitower/config.toml).
func ConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// LoadConfig reads and validates the config file at path.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigOrDefault loads the user config, falling back to defaults when
// the file is missing or unreadable. A malformed file is reported on stderr
// rather than aborting every command.
func LoadConfigOrDefault() *Config {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring config: %v\n", err)
		return DefaultConfig()
	}
	return cfg
}

// Validate checks that backend selectors name known backends.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case "", CacheBackendFile, CacheBackendMemory, CacheBackendRedis, CacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Session.Store {
	case "", SessionStoreFile, SessionStoreMemory, SessionStoreMongo:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown session store %q", c.Session.Store)
	}
	return nil
}
