// Package revise implements the practice-feedback flow: one submitted
// sentence, one evaluation call, one persisted attempt.
package revise

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, ownerID, wordID uuid.UUID) (*domain.Word, error)
}

type attemptRepo interface {
	Create(ctx context.Context, ownerID, wordID uuid.UUID, sentence string, fb domain.Feedback) (*domain.PracticeAttempt, error)
	ListByWord(ctx context.Context, ownerID, wordID uuid.UUID) ([]domain.PracticeAttempt, error)
}

type evaluator interface {
	EvaluateSentence(ctx context.Context, word *domain.Word, sentence string) (*domain.Feedback, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the revise business logic.
type Service struct {
	log       *slog.Logger
	words     wordRepo
	attempts  attemptRepo
	evaluator evaluator
}

// NewService creates a new Revise service.
func NewService(logger *slog.Logger, words wordRepo, attempts attemptRepo, evaluator evaluator) *Service {
	return &Service{
		log:       logger.With("service", "revise"),
		words:     words,
		attempts:  attempts,
		evaluator: evaluator,
	}
}

// SubmitAttempt evaluates one practice sentence against one of the owner's
// words and persists the attempt together with its feedback. Evaluation
// failure persists nothing; an attempt row always carries complete feedback.
func (s *Service) SubmitAttempt(ctx context.Context, ownerID, wordID uuid.UUID, sentence string) (*domain.PracticeAttempt, error) {
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return nil, domain.NewValidationError("sentence", "required")
	}

	word, err := s.words.GetByID(ctx, ownerID, wordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	feedback, err := s.evaluator.EvaluateSentence(ctx, word, sentence)
	if err != nil {
		return nil, fmt.Errorf("evaluate sentence: %w", err)
	}

	attempt, err := s.attempts.Create(ctx, ownerID, wordID, sentence, *feedback)
	if err != nil {
		return nil, fmt.Errorf("store attempt: %w", err)
	}

	s.log.Info("attempt recorded",
		"owner_id", ownerID, "word_id", wordID,
		"tier", attempt.Feedback.Tier, "correct", attempt.IsCorrect)

	return attempt, nil
}

// ListAttempts returns the owner's practice history for one word, newest
// first.
func (s *Service) ListAttempts(ctx context.Context, ownerID, wordID uuid.UUID) ([]domain.PracticeAttempt, error) {
	if _, err := s.words.GetByID(ctx, ownerID, wordID); err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	return s.attempts.ListByWord(ctx, ownerID, wordID)
}
