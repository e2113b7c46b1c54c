package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hangman-solver/internal/factory"
)

var envKeys = []string{
	"HOST", "PORT", "LOG_LEVEL", "DICTIONARY_PATH", "DICTIONARY_DEDUPE",
	"STORAGE_TYPE", "REDIS_URL", "REDIS_KEY_PREFIX", "SQLITE_PATH", "SESSION_TTL",
}

// clearEnv blanks every config variable for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestParseDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, "data/words.txt", cfg.DictionaryPath)
	assert.False(t, cfg.DictionaryDedupe)
	assert.Equal(t, factory.StorageTypeMemory, cfg.StorageType)
	assert.Equal(t, "data/hangman.db", cfg.SQLitePath)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestParseOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DICTIONARY_DEDUPE", "true")
	t.Setenv("STORAGE_TYPE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("REDIS_KEY_PREFIX", "hangman-staging")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.DictionaryDedupe)

	fc := cfg.Factory(nil)
	require.NotNil(t, fc.RedisConfig)
	assert.Equal(t, "redis://localhost:6379/1", fc.RedisConfig.URL)
	assert.Equal(t, 90*time.Minute, fc.RedisConfig.SessionTTL)
	assert.Equal(t, "hangman-staging", fc.RedisConfig.KeyPrefix)
	assert.True(t, fc.DictionaryOptions.Dedupe)
	assert.Empty(t, fc.SQLitePath)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"PORT": "0"}},
		{"non-numeric port", map[string]string{"PORT": "http"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "chatty"}},
		{"bad storage", map[string]string{"STORAGE_TYPE": "mongo"}},
		{"redis without url", map[string]string{"STORAGE_TYPE": "redis"}},
		{"bad ttl", map[string]string{"SESSION_TTL": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Parse()
			assert.Error(t, err)
		})
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nSTORAGE_TYPE=sqlite\nSQLITE_PATH=/tmp/h.db\n"), 0o600))
	t.Cleanup(func() {
		for _, key := range []string{"PORT", "STORAGE_TYPE", "SQLITE_PATH"} {
			_ = os.Unsetenv(key)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "/tmp/h.db", cfg.Factory(nil).SQLitePath)
	assert.Equal(t, 24*time.Hour, cfg.Factory(nil).SQLiteSessionTTL)
	assert.Equal(t, ":7070", cfg.Server().Addr())
}

func TestLoadMissingEnvFileIsFine(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}
