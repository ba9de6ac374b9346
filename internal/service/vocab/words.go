package vocab

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

// GetWord returns one of the owner's words. domain.ErrNotFound covers both
// a missing ID and a word held by another owner.
func (s *Service) GetWord(ctx context.Context, ownerID, wordID uuid.UUID) (*domain.Word, error) {
	return s.words.GetByID(ctx, ownerID, wordID)
}

// Find lists the owner's words matching the filter, newest first.
func (s *Service) Find(ctx context.Context, ownerID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error) {
	return s.words.Find(ctx, ownerID, filter)
}

// RandomWord picks one of the owner's words uniformly at random. A non-nil
// learned restricts the pool: unlearned words for study, learned for revise.
func (s *Service) RandomWord(ctx context.Context, ownerID uuid.UUID, learned *bool) (*domain.Word, error) {
	return s.words.Random(ctx, ownerID, learned)
}

// ToggleLearned sets the learned flag and returns the new state.
func (s *Service) ToggleLearned(ctx context.Context, ownerID, wordID uuid.UUID, learned bool) (bool, error) {
	word, err := s.words.SetLearned(ctx, ownerID, wordID, learned)
	if err != nil {
		return false, fmt.Errorf("set learned: %w", err)
	}
	return word.IsLearned, nil
}

// DeleteWord removes a word; its cached examples and practice history go
// with it atomically.
func (s *Service) DeleteWord(ctx context.Context, ownerID, wordID uuid.UUID) error {
	if err := s.words.Delete(ctx, ownerID, wordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.Info("word deleted", "owner_id", ownerID, "word_id", wordID)
	return nil
}

// EditWord replaces the editable fields of a word. The duplicate check runs
// against the new spanish text, excluding the edited row so an unchanged
// spelling is not a collision.
func (s *Service) EditWord(ctx context.Context, ownerID, wordID uuid.UUID, input EditWordInput) (*domain.Word, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Check and update in one transaction so a concurrent insert of the
	// same spelling cannot slip between them.
	var word *domain.Word
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.words.ExistsByText(txCtx, ownerID, input.Spanish, wordID)
		if err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			return domain.ErrAlreadyExists
		}

		word, err = s.words.Update(txCtx, ownerID, wordID, input.Spanish, input.English, input.Type, input.Themes)
		if err != nil {
			return fmt.Errorf("update word: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return word, nil
}
