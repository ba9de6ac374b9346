// Package attempt implements the PracticeAttempt repository using PostgreSQL.
package attempt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/palabra-app/palabra-backend/internal/adapter/postgres"
	"github.com/palabra-app/palabra-backend/internal/domain"
)

// Repo provides practice-attempt persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new practice-attempt repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO practice_attempts
    (id, owner_id, word_id, sentence, correctness, summary, corrections, suggestions, native_tip, is_correct, attempted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

const listByWordSQL = `
SELECT id, owner_id, word_id, sentence, correctness, summary, corrections, suggestions, native_tip, is_correct, attempted_at
FROM practice_attempts
WHERE owner_id = $1 AND word_id = $2
ORDER BY attempted_at DESC, id`

// Create persists one graded attempt. The feedback payload is stored
// alongside the sentence; a missing word results in domain.ErrNotFound via
// the foreign key.
func (r *Repo) Create(ctx context.Context, ownerID, wordID uuid.UUID, sentence string, fb domain.Feedback) (*domain.PracticeAttempt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	a := domain.PracticeAttempt{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		WordID:      wordID,
		Sentence:    sentence,
		Feedback:    fb,
		IsCorrect:   fb.IsCorrect(),
		AttemptedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := querier.Exec(ctx, createSQL,
		a.ID, a.OwnerID, a.WordID, a.Sentence,
		string(fb.Tier), fb.Summary, fb.Corrections, fb.Suggestions, fb.NativeTip,
		a.IsCorrect, a.AttemptedAt)
	if err != nil {
		return nil, postgres.MapError(err, "attempt", a.ID)
	}

	return &a, nil
}

// ListByWord returns the owner's attempts for one word, newest first.
func (r *Repo) ListByWord(ctx context.Context, ownerID, wordID uuid.UUID) ([]domain.PracticeAttempt, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByWordSQL, ownerID, wordID)
	if err != nil {
		return nil, fmt.Errorf("list attempts by word: %w", err)
	}
	defer rows.Close()

	attempts, err := scanAttempts(rows)
	if err != nil {
		return nil, fmt.Errorf("list attempts by word: %w", err)
	}

	return attempts, nil
}

// scanAttempts scans multiple rows into a domain.PracticeAttempt slice.
func scanAttempts(rows pgx.Rows) ([]domain.PracticeAttempt, error) {
	var attempts []domain.PracticeAttempt
	for rows.Next() {
		var (
			a    domain.PracticeAttempt
			tier string
		)
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.WordID, &a.Sentence,
			&tier, &a.Feedback.Summary, &a.Feedback.Corrections, &a.Feedback.Suggestions,
			&a.Feedback.NativeTip, &a.IsCorrect, &a.AttemptedAt); err != nil {
			return nil, err
		}
		a.Feedback.Tier = domain.CorrectnessTier(tier)
		attempts = append(attempts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if attempts == nil {
		attempts = []domain.PracticeAttempt{}
	}

	return attempts, nil
}
