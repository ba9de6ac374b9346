package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/palabra-app/palabra-backend/internal/domain"
	"github.com/palabra-app/palabra-backend/internal/service/vocab"
)

// vocabService defines the vocabulary operations the handler depends on.
type vocabService interface {
	IngestBulk(ctx context.Context, ownerID uuid.UUID, rawText string) (*vocab.IngestResult, error)
	GetWord(ctx context.Context, ownerID, wordID uuid.UUID) (*domain.Word, error)
	Find(ctx context.Context, ownerID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error)
	RandomWord(ctx context.Context, ownerID uuid.UUID, learned *bool) (*domain.Word, error)
	ToggleLearned(ctx context.Context, ownerID, wordID uuid.UUID, learned bool) (bool, error)
	DeleteWord(ctx context.Context, ownerID, wordID uuid.UUID) error
	EditWord(ctx context.Context, ownerID, wordID uuid.UUID, input vocab.EditWordInput) (*domain.Word, error)
}

// WordHandler serves the /v1/words endpoints.
type WordHandler struct {
	log   *slog.Logger
	vocab vocabService
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(logger *slog.Logger, vocab vocabService) *WordHandler {
	return &WordHandler{
		log:   logger.With("handler", "words"),
		vocab: vocab,
	}
}

type wordResponse struct {
	ID        uuid.UUID `json:"id"`
	Spanish   string    `json:"spanish"`
	English   string    `json:"english"`
	Type      string    `json:"word_type"`
	Themes    []string  `json:"themes"`
	IsLearned bool      `json:"is_learned"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toWordResponse(w *domain.Word) wordResponse {
	themes := make([]string, len(w.Themes))
	for i, t := range w.Themes {
		themes[i] = string(t)
	}
	return wordResponse{
		ID:        w.ID,
		Spanish:   w.Spanish,
		English:   w.English,
		Type:      string(w.Type),
		Themes:    themes,
		IsLearned: w.IsLearned,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, len(words))
	for i := range words {
		out[i] = toWordResponse(&words[i])
	}
	return out
}

type bulkIngestRequest struct {
	Text string `json:"text"`
}

type bulkIngestResponse struct {
	Saved     []wordResponse      `json:"saved"`
	Skipped   []vocab.SkippedItem `json:"skipped"`
	Truncated bool                `json:"truncated"`
}

// BulkIngest handles POST /v1/words/bulk.
func (h *WordHandler) BulkIngest(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req bulkIngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.vocab.IngestBulk(r.Context(), ownerID, req.Text)
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, bulkIngestResponse{
		Saved:     toWordResponses(result.Saved),
		Skipped:   result.Skipped,
		Truncated: result.Truncated,
	})
}

type listWordsResponse struct {
	Words []wordResponse `json:"words"`
}

// List handles GET /v1/words with optional filter query parameters.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	words, err := h.vocab.Find(r.Context(), ownerID, filter)
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listWordsResponse{Words: toWordResponses(words)})
}

func filterFromQuery(r *http.Request) (domain.WordFilter, error) {
	var filter domain.WordFilter
	q := r.URL.Query()

	if raw := q.Get("type"); raw != "" {
		wt := domain.WordType(raw)
		if !wt.IsValid() {
			return filter, domain.NewValidationError("type", "unknown word type")
		}
		filter.Type = &wt
	}
	if raw := q.Get("theme"); raw != "" {
		th := domain.Theme(raw)
		if !th.IsValid() {
			return filter, domain.NewValidationError("theme", "unknown theme")
		}
		filter.Theme = &th
	}
	if raw := q.Get("learned"); raw != "" {
		learned, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, domain.NewValidationError("learned", "must be a boolean")
		}
		filter.IsLearned = &learned
	}
	filter.Search = q.Get("search")

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, domain.NewValidationError("limit", "must be a non-negative integer")
		}
		filter.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filter, domain.NewValidationError("offset", "must be a non-negative integer")
		}
		filter.Offset = offset
	}

	return filter, nil
}

// Random handles GET /v1/words/random. An optional learned query parameter
// restricts the pool.
func (h *WordHandler) Random(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var learned *bool
	if raw := r.URL.Query().Get("learned"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "learned must be a boolean")
			return
		}
		learned = &v
	}

	word, err := h.vocab.RandomWord(r.Context(), ownerID, learned)
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Get handles GET /v1/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	word, err := h.vocab.GetWord(r.Context(), ownerID, wordID)
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

type editWordRequest struct {
	Spanish string   `json:"spanish"`
	English string   `json:"english"`
	Type    string   `json:"word_type"`
	Themes  []string `json:"themes"`
}

// Edit handles PATCH /v1/words/{id}.
func (h *WordHandler) Edit(w http.ResponseWriter, r *http.Request) {
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

	var req editWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	themes := make([]domain.Theme, len(req.Themes))
	for i, t := range req.Themes {
		themes[i] = domain.Theme(t)
	}

	word, err := h.vocab.EditWord(r.Context(), ownerID, wordID, vocab.EditWordInput{
		Spanish: req.Spanish,
		English: req.English,
		Type:    domain.WordType(req.Type),
		Themes:  themes,
	})
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(word))
}

// Delete handles DELETE /v1/words/{id}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.vocab.DeleteWord(r.Context(), ownerID, wordID); err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type setLearnedRequest struct {
	Learned bool `json:"learned"`
}

type setLearnedResponse struct {
	IsLearned bool `json:"is_learned"`
}

// SetLearned handles POST /v1/words/{id}/learned.
func (h *WordHandler) SetLearned(w http.ResponseWriter, r *http.Request) {
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

	var req setLearnedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	learned, err := h.vocab.ToggleLearned(r.Context(), ownerID, wordID, req.Learned)
	if err != nil {
		handleServiceError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, setLearnedResponse{IsLearned: learned})
}
