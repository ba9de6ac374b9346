package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

// studyService defines the example-cache operations the handler depends on.
type studyService interface {
	GetExamples(ctx context.Context, ownerID, wordID uuid.UUID, regenerate bool) ([]domain.GeneratedExample, error)
	ClearExamples(ctx context.Context, ownerID, wordID uuid.UUID) error
}

// ExampleHandler serves the /v1/words/{id}/examples endpoints.
type ExampleHandler struct {
	log   *slog.Logger
	study studyService
}

// NewExampleHandler creates an ExampleHandler.
func NewExampleHandler(logger *slog.Logger, study studyService) *ExampleHandler {
	return &ExampleHandler{
		log:   logger.With("handler", "examples"),
		study: study,
	}
}

type exampleResponse struct {
	ID          uuid.UUID `json:"id"`
	Spanish     string    `json:"spanish"`
	English     string    `json:"english"`
	GeneratedAt time.Time `json:"generated_at"`
}

type listExamplesResponse struct {
	Examples []exampleResponse `json:"examples"`
}

func toExampleResponses(examples []domain.GeneratedExample) []exampleResponse {
	out := make([]exampleResponse, len(examples))
	for i, ex := range examples {
		out[i] = exampleResponse{
			ID:          ex.ID,
			Spanish:     ex.Spanish,
			English:     ex.English,
			GeneratedAt: ex.GeneratedAt,
		}
	}
	return out
}

// Get handles GET /v1/words/{id}/examples. Returns cached examples,
// generating a first batch when the cache is empty.
func (h *ExampleHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, false)
}

// Regenerate handles POST /v1/words/{id}/examples. Always generates a
// fresh batch and appends it to the cache.
func (h *ExampleHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, true)
}

func (h *ExampleHandler) serve(w http.ResponseWriter, r *http.Request, regenerate bool) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	wordID, err := wordIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	examples, err := h.study.GetExamples(r.Context(), ownerID, wordID, regenerate)
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listExamplesResponse{Examples: toExampleResponses(examples)})
}

// Clear handles DELETE /v1/words/{id}/examples.
func (h *ExampleHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	wordID, err := wordIDFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid word id")
		return
	}

	if err := h.study.ClearExamples(r.Context(), ownerID, wordID); err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
