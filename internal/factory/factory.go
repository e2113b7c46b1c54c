package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/hangman-solver/internal/dependencies/clock"
	"github.com/mcoot/hangman-solver/internal/dependencies/random"
	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/services/dictionary"
	"github.com/mcoot/hangman-solver/internal/services/session"
	"github.com/mcoot/hangman-solver/internal/services/simulator"
	"github.com/mcoot/hangman-solver/internal/services/solver"
	"github.com/mcoot/hangman-solver/internal/storage"
	"github.com/mcoot/hangman-solver/internal/storage/memory"
	redisstorage "github.com/mcoot/hangman-solver/internal/storage/redis"
	sqlitestorage "github.com/mcoot/hangman-solver/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	Strategies        *solver.Registry
	SessionController *session.Controller

	dictionaryPath string
	logger         *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the word list read by LoadDictionary (optional)
	DictionaryPath string
	// DictionaryOptions controls word list normalisation
	DictionaryOptions dictionary.Options
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// SQLiteSessionTTL expires idle SQLite sessions; zero keeps them forever
	SQLiteSessionTTL time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	app := newWithDependencies(store, clock.New(), random.New(), cfg.DictionaryOptions, logger)
	app.dictionaryPath = cfg.DictionaryPath
	return app, nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		return store, nil
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		store, err := sqlitestorage.Open(cfg.SQLitePath, sqlitestorage.WithSessionTTL(cfg.SQLiteSessionTTL))
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, opts dictionary.Options, logger *slog.Logger) *App {
	dictService := dictionary.New(store, opts, logger)
	strategies := solver.NewRegistry(
		solver.New(dictService, logger),
		solver.NewRandomStrategy(dictService, rnd),
	)
	sessionController := session.NewController(store, strategies, clk, rnd, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		Strategies:        strategies,
		SessionController: sessionController,
		logger:            logger,
	}
}

// LoadDictionary loads the configured word list, falling back to a previously
// stored list and then to the built-in words.
func (a *App) LoadDictionary(ctx context.Context) model.DictionarySource {
	return a.DictionaryService.LoadOrFallback(ctx, a.dictionaryPath)
}

// NewSimulator returns a game simulator driving the named strategy
func (a *App) NewSimulator(strategy string) (*simulator.Simulator, error) {
	st, err := a.Strategies.Get(strategy)
	if err != nil {
		return nil, err
	}
	return simulator.New(st, a.logger), nil
}

// Close releases storage connections, if the backend holds any
func (a *App) Close() error {
	if c, ok := a.Storage.(storage.Closer); ok {
		return c.Close()
	}
	return nil
}
