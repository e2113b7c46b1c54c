package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mcoot/hangman-solver/internal/api"
	"github.com/mcoot/hangman-solver/internal/config"
	"github.com/mcoot/hangman-solver/internal/factory"
	"github.com/mcoot/hangman-solver/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	app, err := factory.New(cfg.Factory(logger))
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source := app.LoadDictionary(ctx)
	logger.Info("dictionary ready",
		slog.String("source", string(source)),
		slog.Int("words", app.DictionaryService.WordCount()),
		slog.String("fingerprint", app.DictionaryService.Fingerprint()),
		slog.String("storage", cfg.StorageType),
	)

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		DictionaryService: app.DictionaryService,
		Strategies:        app.Strategies,
		SessionController: app.SessionController,
	})

	webRouter := web.NewRouter(web.RouterConfig{
		Logger:     logger,
		Strategies: app.Strategies,
		StaticDir:  findStaticDir(),
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/api/", apiRouter)
	for _, path := range api.LegacyPaths {
		mux.Handle(path, apiRouter)
	}
	mux.Handle("/", webRouter)

	server := api.NewServer(mux, cfg.Server(), logger)
	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// findStaticDir returns the static files directory, or "" if there is none
func findStaticDir() string {
	candidates := []string{
		"internal/web/static",
		filepath.Join(os.Getenv("PWD"), "internal/web/static"),
	}

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}
