// Package example implements the GeneratedExample repository using PostgreSQL.
// Batch inserts go through pgx.Batch so one regeneration is one round trip.
package example

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

// Repo provides generated-example persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new generated-example repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO generated_examples (id, word_id, spanish, english, generated_at)
VALUES ($1, $2, $3, $4, $5)`

const listByWordSQL = `
SELECT id, word_id, spanish, english, generated_at
FROM generated_examples
WHERE word_id = $1
ORDER BY generated_at, id`

const deleteByWordSQL = `
DELETE FROM generated_examples
WHERE word_id = $1`

// ListByWord returns all stored examples for a word, oldest first.
// A word with no examples yields an empty slice, not an error.
func (r *Repo) ListByWord(ctx context.Context, wordID uuid.UUID) ([]domain.GeneratedExample, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByWordSQL, wordID)
	if err != nil {
		return nil, fmt.Errorf("list examples by word: %w", err)
	}
	defer rows.Close()

	examples, err := scanExamples(rows)
	if err != nil {
		return nil, fmt.Errorf("list examples by word: %w", err)
	}

	return examples, nil
}

// CreateBatch inserts a set of examples for one word in a single batch.
// All rows share one generated_at timestamp. Returns the persisted examples.
func (r *Repo) CreateBatch(ctx context.Context, wordID uuid.UUID, pairs [][2]string) ([]domain.GeneratedExample, error) {
	if len(pairs) == 0 {
		return []domain.GeneratedExample{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	batch := &pgx.Batch{}
	examples := make([]domain.GeneratedExample, 0, len(pairs))
	for _, p := range pairs {
		e := domain.GeneratedExample{
			ID:          uuid.New(),
			WordID:      wordID,
			Spanish:     p[0],
			English:     p[1],
			GeneratedAt: now,
		}
		batch.Queue(createSQL, e.ID, e.WordID, e.Spanish, e.English, e.GeneratedAt)
		examples = append(examples, e)
	}

	results := querier.SendBatch(ctx, batch)
	defer results.Close()

	for range examples {
		if _, err := results.Exec(); err != nil {
			return nil, postgres.MapError(err, "example", wordID)
		}
	}

	return examples, nil
}

// DeleteByWord removes every stored example for a word. Deleting zero rows
// is not an error; the word may simply have no cache yet.
func (r *Repo) DeleteByWord(ctx context.Context, wordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, deleteByWordSQL, wordID); err != nil {
		return postgres.MapError(err, "example", wordID)
	}

	return nil
}

// scanExamples scans multiple rows into a domain.GeneratedExample slice.
func scanExamples(rows pgx.Rows) ([]domain.GeneratedExample, error) {
	var examples []domain.GeneratedExample
	for rows.Next() {
		var e domain.GeneratedExample
		if err := rows.Scan(&e.ID, &e.WordID, &e.Spanish, &e.English, &e.GeneratedAt); err != nil {
			return nil, err
		}
		examples = append(examples, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if examples == nil {
		examples = []domain.GeneratedExample{}
	}

	return examples, nil
}
