// Package app assembles the application: configuration, logger, database
// pool, generation client, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/palabra-app/palabra-backend/internal/adapter/postgres"
	attemptrepo "github.com/palabra-app/palabra-backend/internal/adapter/postgres/attempt"
	examplerepo "github.com/palabra-app/palabra-backend/internal/adapter/postgres/example"
	wordrepo "github.com/palabra-app/palabra-backend/internal/adapter/postgres/word"
	"github.com/palabra-app/palabra-backend/internal/config"
	"github.com/palabra-app/palabra-backend/internal/llm"
	"github.com/palabra-app/palabra-backend/internal/service/revise"
	"github.com/palabra-app/palabra-backend/internal/service/study"
	"github.com/palabra-app/palabra-backend/internal/service/vocab"
	"github.com/palabra-app/palabra-backend/internal/transport/rest"
)

// Run is the application entry point. It blocks until ctx is cancelled,
// then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	words := wordrepo.New(pool)
	examples := examplerepo.New(pool)
	attempts := attemptrepo.New(pool)
	txManager := postgres.NewTxManager(pool)

	llmClient := llm.NewClient(cfg.LLM, logger)

	vocabSvc := vocab.NewService(logger, words, llmClient, txManager, cfg.LLM)
	studySvc := study.NewService(logger, words, examples, llmClient, cfg.LLM)
	reviseSvc := revise.NewService(logger, words, attempts, llmClient)

	router := rest.NewRouter(
		logger,
		rest.NewHealthHandler(pool, BuildVersion()),
		rest.NewWordHandler(logger, vocabSvc),
		rest.NewExampleHandler(logger, studySvc),
		rest.NewAttemptHandler(logger, reviseSvc),
	)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
