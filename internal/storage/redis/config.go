package redis

import "time"

// DefaultKeyPrefix namespaces every key the solver writes
const DefaultKeyPrefix = "hangman"

// Config controls the Redis connection and key layout
type Config struct {
	URL          string
	PoolSize     int
	MinIdleConns int

	// KeyPrefix lets several deployments share one Redis; empty means
	// DefaultKeyPrefix.
	KeyPrefix string

	// SessionTTL expires idle sessions; zero keeps them forever
	SessionTTL time.Duration
}

func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		KeyPrefix:    DefaultKeyPrefix,
		SessionTTL:   24 * time.Hour,
	}
}

func (c Config) prefix() string {
	if c.KeyPrefix == "" {
		return DefaultKeyPrefix
	}
	return c.KeyPrefix
}
