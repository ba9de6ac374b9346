// Package rest wires the HTTP transport: routing, request decoding,
// and error-to-status mapping over the service layer.
package rest

import (
	"log/slog"
	"net/http"

	"github.com/palabra-app/palabra-backend/internal/transport/middleware"
)

// NewRouter builds the HTTP handler tree with the standard middleware chain.
func NewRouter(
	logger *slog.Logger,
	health *HealthHandler,
	words *WordHandler,
	examples *ExampleHandler,
	attempts *AttemptHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	mux.HandleFunc("POST /v1/words/bulk", words.BulkIngest)
	mux.HandleFunc("GET /v1/words", words.List)
	mux.HandleFunc("GET /v1/words/random", words.Random)
	mux.HandleFunc("GET /v1/words/{id}", words.Get)
	mux.HandleFunc("PATCH /v1/words/{id}", words.Edit)
	mux.HandleFunc("DELETE /v1/words/{id}", words.Delete)
	mux.HandleFunc("POST /v1/words/{id}/learned", words.SetLearned)

	mux.HandleFunc("GET /v1/words/{id}/examples", examples.Get)
	mux.HandleFunc("POST /v1/words/{id}/examples", examples.Regenerate)
	mux.HandleFunc("DELETE /v1/words/{id}/examples", examples.Clear)

	mux.HandleFunc("POST /v1/words/{id}/attempts", attempts.Submit)
	mux.HandleFunc("GET /v1/words/{id}/attempts", attempts.List)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)
	return chain(mux)
}
