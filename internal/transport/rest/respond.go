package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

// OwnerHeader carries the opaque owner identity. Resolving a real session
// to it happens upstream of this service.
const OwnerHeader = "X-Owner-Id"

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// ownerFromRequest extracts and parses the owner UUID from the request.
func ownerFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get(OwnerHeader)
	if raw == "" {
		return uuid.Nil, errors.New("missing " + OwnerHeader + " header")
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("invalid " + OwnerHeader + " header")
	}
	return id, nil
}

// wordIDFromRequest parses the {id} path segment.
func wordIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

// handleServiceError maps domain errors to HTTP status codes.
func handleServiceError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrGenerationFailed), errors.Is(err, domain.ErrInvalidGeneration):
		log.WarnContext(r.Context(), "generation unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "generation temporarily unavailable")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
