package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/hangman-solver/internal/api"
	"github.com/mcoot/hangman-solver/internal/factory"
	"github.com/mcoot/hangman-solver/internal/services/dictionary"
	redisstorage "github.com/mcoot/hangman-solver/internal/storage/redis"
)

// Config is the server configuration, read from the environment
type Config struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	DictionaryPath   string `env:"DICTIONARY_PATH" envDefault:"data/words.txt"`
	DictionaryDedupe bool   `env:"DICTIONARY_DEDUPE" envDefault:"false"`

	StorageType string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"REDIS_URL"`
	RedisPrefix string        `env:"REDIS_KEY_PREFIX" envDefault:"hangman"`
	SQLitePath  string        `env:"SQLITE_PATH" envDefault:"data/hangman.db"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Load reads an optional .env file and then parses the environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from environment variables only
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values the environment parser cannot
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.StorageType {
	case factory.StorageTypeMemory, factory.StorageTypeSQLite:
	case factory.StorageTypeRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("STORAGE_TYPE must be memory, redis or sqlite, got %q", c.StorageType)
	}
	if c.SessionTTL < 0 {
		return errors.New("SESSION_TTL must not be negative")
	}
	return nil
}

// ParseLevel converts a LOG_LEVEL value to a slog.Level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be debug, info, warn or error: %w", err)
	}
	return level, nil
}

// Level returns the configured log level
func (c *Config) Level() slog.Level {
	level, _ := ParseLevel(c.LogLevel)
	return level
}

// Server returns the HTTP server settings
func (c *Config) Server() api.ServerConfig {
	sc := api.DefaultServerConfig()
	sc.Host = c.Host
	sc.Port = c.Port
	return sc
}

// Factory returns the application factory settings
func (c *Config) Factory(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		DictionaryPath:    c.DictionaryPath,
		DictionaryOptions: dictionary.Options{Dedupe: c.DictionaryDedupe},
		Logger:            logger,
		StorageType:       c.StorageType,
	}

	switch c.StorageType {
	case factory.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		redisCfg.KeyPrefix = c.RedisPrefix
		redisCfg.SessionTTL = c.SessionTTL
		fc.RedisConfig = &redisCfg
	case factory.StorageTypeSQLite:
		fc.SQLitePath = c.SQLitePath
		fc.SQLiteSessionTTL = c.SessionTTL
	}
	return fc
}
