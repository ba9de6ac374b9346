// Package study implements the example-cache flow: stored examples are the
// cache, generation fills it, and regeneration accumulates.
package study

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/palabra-app/palabra-backend/internal/config"
	"github.com/palabra-app/palabra-backend/internal/domain"
	"github.com/palabra-app/palabra-backend/internal/llm"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, ownerID, wordID uuid.UUID) (*domain.Word, error)
}

type exampleRepo interface {
	ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.GeneratedExample, error)
	CreateBatch(ctx context.Context, wordID uuid.UUID, pairs [][2]string) ([]domain.GeneratedExample, error)
	DeleteByWord(ctx context.Context, wordID uuid.UUID) error
}

type generator interface {
	GenerateExamples(ctx context.Context, word *domain.Word, count int) ([]llm.ExampleRecord, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the study business logic.
type Service struct {
	log       *slog.Logger
	words     wordRepo
	examples  exampleRepo
	generator generator
	cfg       config.LLMConfig
}

// NewService creates a new Study service.
func NewService(logger *slog.Logger, words wordRepo, examples exampleRepo, generator generator, cfg config.LLMConfig) *Service {
	return &Service{
		log:       logger.With("service", "study"),
		words:     words,
		examples:  examples,
		generator: generator,
		cfg:       cfg,
	}
}

// GetExamples returns example sentences for one of the owner's words.
// A populated cache is returned as-is with no generation call. An empty
// cache, or regenerate=true, triggers exactly one generation call; the new
// sentences are persisted and the full accumulated set is returned. On
// generation failure nothing is persisted and the error propagates.
func (s *Service) GetExamples(ctx context.Context, ownerID, wordID uuid.UUID, regenerate bool) ([]domain.GeneratedExample, error) {
	word, err := s.words.GetByID(ctx, ownerID, wordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	if !regenerate {
		cached, err := s.examples.ListByWord(ctx, wordID)
		if err != nil {
			return nil, fmt.Errorf("list examples: %w", err)
		}
		if len(cached) > 0 {
			s.log.Debug("example cache hit", "word_id", wordID, "count", len(cached))
			return cached, nil
		}
	}

	records, err := s.generator.GenerateExamples(ctx, word, s.cfg.ExampleCount)
	if err != nil {
		return nil, fmt.Errorf("generate examples: %w", err)
	}

	pairs := make([][2]string, len(records))
	for i, rec := range records {
		pairs[i] = [2]string{rec.Spanish, rec.English}
	}

	if _, err := s.examples.CreateBatch(ctx, wordID, pairs); err != nil {
		return nil, fmt.Errorf("store examples: %w", err)
	}

	all, err := s.examples.ListByWord(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}

	s.log.Info("examples generated", "word_id", wordID, "new", len(pairs), "total", len(all))
	return all, nil
}

// ClearExamples discards every cached example for one of the owner's words.
// This is the only way the cache shrinks short of deleting the word.
func (s *Service) ClearExamples(ctx context.Context, ownerID, wordID uuid.UUID) error {
	if _, err := s.words.GetByID(ctx, ownerID, wordID); err != nil {
		return fmt.Errorf("get word: %w", err)
	}

	if err := s.examples.DeleteByWord(ctx, wordID); err != nil {
		return fmt.Errorf("clear examples: %w", err)
	}

	s.log.Info("examples cleared", "owner_id", ownerID, "word_id", wordID)
	return nil
}
