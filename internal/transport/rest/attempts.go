package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

// reviseService defines the practice-attempt operations the handler depends on.
type reviseService interface {
	SubmitAttempt(ctx context.Context, ownerID, wordID uuid.UUID, sentence string) (*domain.PracticeAttempt, error)
	ListAttempts(ctx context.Context, ownerID, wordID uuid.UUID) ([]domain.PracticeAttempt, error)
}

// AttemptHandler serves the /v1/words/{id}/attempts endpoints.
type AttemptHandler struct {
	log    *slog.Logger
	revise reviseService
}

// NewAttemptHandler creates an AttemptHandler.
func NewAttemptHandler(logger *slog.Logger, revise reviseService) *AttemptHandler {
	return &AttemptHandler{
		log:    logger.With("handler", "attempts"),
		revise: revise,
	}
}

type feedbackResponse struct {
	Tier        string   `json:"tier"`
	Summary     string   `json:"summary"`
	Corrections []string `json:"corrections"`
	Suggestions []string `json:"suggestions"`
	NativeTip   string   `json:"native_tip,omitempty"`
}

type attemptResponse struct {
	ID          uuid.UUID        `json:"id"`
	WordID      uuid.UUID        `json:"word_id"`
	Sentence    string           `json:"sentence"`
	Feedback    feedbackResponse `json:"feedback"`
	IsCorrect   bool             `json:"is_correct"`
	AttemptedAt time.Time        `json:"attempted_at"`
}

func toAttemptResponse(a *domain.PracticeAttempt) attemptResponse {
	return attemptResponse{
		ID:       a.ID,
		WordID:   a.WordID,
		Sentence: a.Sentence,
		Feedback: feedbackResponse{
			Tier:        string(a.Feedback.Tier),
			Summary:     a.Feedback.Summary,
			Corrections: a.Feedback.Corrections,
			Suggestions: a.Feedback.Suggestions,
			NativeTip:   a.Feedback.NativeTip,
		},
		IsCorrect:   a.IsCorrect,
		AttemptedAt: a.AttemptedAt,
	}
}

type submitAttemptRequest struct {
	Sentence string `json:"sentence"`
}

// Submit handles POST /v1/words/{id}/attempts.
func (h *AttemptHandler) Submit(w http.ResponseWriter, r *http.Request) {
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

	var req submitAttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	attempt, err := h.revise.SubmitAttempt(r.Context(), ownerID, wordID, req.Sentence)
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAttemptResponse(attempt))
}

type listAttemptsResponse struct {
	Attempts []attemptResponse `json:"attempts"`
}

// List handles GET /v1/words/{id}/attempts.
func (h *AttemptHandler) List(w http.ResponseWriter, r *http.Request) {
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

	attempts, err := h.revise.ListAttempts(r.Context(), ownerID, wordID)
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	out := make([]attemptResponse, len(attempts))
	for i := range attempts {
		out[i] = toAttemptResponse(&attempts[i])
	}
	writeJSON(w, http.StatusOK, listAttemptsResponse{Attempts: out})
}
