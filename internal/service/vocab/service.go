// Package vocab implements the vocabulary business logic: bulk ingestion
// through the generation client and per-owner word management.
package vocab

import (
	"context"
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
	ExistsByText(ctx context.Context, ownerID uuid.UUID, spanish string, excludeID uuid.UUID) (bool, error)
	Find(ctx context.Context, ownerID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error)
	Random(ctx context.Context, ownerID uuid.UUID, learned *bool) (*domain.Word, error)
	Create(ctx context.Context, ownerID uuid.UUID, spanish, english string, wordType domain.WordType, themes []domain.Theme) (*domain.Word, error)
	Update(ctx context.Context, ownerID, wordID uuid.UUID, spanish, english string, wordType domain.WordType, themes []domain.Theme) (*domain.Word, error)
	SetLearned(ctx context.Context, ownerID, wordID uuid.UUID, learned bool) (*domain.Word, error)
	Delete(ctx context.Context, ownerID, wordID uuid.UUID) error
}

type generator interface {
	ProcessWords(ctx context.Context, words []string) ([]llm.WordRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary business logic.
type Service struct {
	log       *slog.Logger
	words     wordRepo
	generator generator
	tx        txManager
	cfg       config.LLMConfig
}

// NewService creates a new Vocab service.
func NewService(logger *slog.Logger, words wordRepo, generator generator, tx txManager, cfg config.LLMConfig) *Service {
	return &Service{
		log:       logger.With("service", "vocab"),
		words:     words,
		generator: generator,
		tx:        tx,
		cfg:       cfg,
	}
}
