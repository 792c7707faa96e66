// Package slideservice boots the slide service: configuration, storage,
// services, the live hub and the HTTP server, with graceful shutdown on
// SIGINT/SIGTERM.
package slideservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/slideai/slideai-server/internal/ai"
	"github.com/slideai/slideai-server/internal/api"
	"github.com/slideai/slideai-server/internal/catalog"
	"github.com/slideai/slideai-server/internal/config"
	"github.com/slideai/slideai-server/internal/deck"
	"github.com/slideai/slideai-server/internal/editor"
	"github.com/slideai/slideai-server/internal/live"
	"github.com/slideai/slideai-server/internal/logger"
	"github.com/slideai/slideai-server/internal/services"
	"github.com/slideai/slideai-server/internal/store"
	"github.com/slideai/slideai-server/internal/store/postgres"
	"github.com/slideai/slideai-server/internal/store/sqlite"
)

// Run starts the slide service HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("slide-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := newStore(ctx, cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store unavailable")
		return err
	}
	defer func() { _ = st.Close() }()

	cat := catalog.New()
	hub := live.NewHub(log)
	presSvc := services.NewPresentationService(st)
	aiClient := newAIClient(cfg, log)
	composeSvc := services.NewComposeService(cat, generatorOrNil(aiClient), deck.UUIDSource{}, nil)
	sessions := editor.NewManager(presSvc, cat, hub, nil, cfg.AutosaveDebounce, log)

	go hub.Run(ctx)

	router := api.NewRouter(api.Deps{
		Store:         st,
		Presentations: presSvc,
		Compose:       composeSvc,
		Sessions:      sessions,
		Catalog:       cat,
		Hub:           hub,
		Improver:      improverOrNil(aiClient),
		Log:           log,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Flush open editing sessions before the listener goes away.
		sessions.Shutdown(ctxShutdown)

		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newStore builds the store adapter selected by DBDriver.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqlite.New(db), nil
	case "postgres":
		if err := postgres.Bootstrap(ctx, cfg.PostgresDSN); err != nil {
			return nil, err
		}
		db, err := postgres.Open(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		return postgres.New(db), nil
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

// newAIClient returns the OpenRouter-backed client, or nil when no API key is
// configured. Generation endpoints then fall back to catalog defaults where
// they can and report errors where they cannot.
func newAIClient(cfg *config.Config, log zerolog.Logger) *ai.Client {
	if cfg.OpenRouterAPIKey == "" {
		log.Warn().Msg("No AI API key configured; generation endpoints run in fallback mode")
		return nil
	}
	return ai.New(ai.Options{
		BaseURL: cfg.OpenRouterBaseURL,
		APIKey:  cfg.OpenRouterAPIKey,
		Model:   cfg.AIModel,
		Timeout: cfg.AITimeout,
	})
}

// generatorOrNil avoids handing the composer a typed-nil interface.
func generatorOrNil(c *ai.Client) services.Generator {
	if c == nil {
		return nil
	}
	return c
}

func improverOrNil(c *ai.Client) api.Improver {
	if c == nil {
		return nil
	}
	return c
}
