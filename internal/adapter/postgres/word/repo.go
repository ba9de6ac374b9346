// Package word implements the Word repository using PostgreSQL.
// Fixed-shape queries use raw SQL; the filtered listing is composed with
// squirrel because every predicate is optional.
package word

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/palabra-app/palabra-backend/internal/adapter/postgres"
	"github.com/palabra-app/palabra-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const wordColumns = `id, owner_id, spanish, english, word_type, themes, is_learned, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL for fixed-shape queries
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO words (id, owner_id, spanish, english, word_type, themes, is_learned, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + wordColumns

const getByIDSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE id = $1 AND owner_id = $2`

const existsByTextSQL = `
SELECT EXISTS (
    SELECT 1 FROM words
    WHERE owner_id = $1 AND lower(spanish) = lower($2) AND id != $3
)`

const updateSQL = `
UPDATE words
SET spanish = $3, english = $4, word_type = $5, themes = $6, updated_at = $7
WHERE id = $1 AND owner_id = $2
RETURNING ` + wordColumns

const setLearnedSQL = `
UPDATE words
SET is_learned = $3, updated_at = $4
WHERE id = $1 AND owner_id = $2
RETURNING ` + wordColumns

const deleteSQL = `
DELETE FROM words
WHERE id = $1 AND owner_id = $2`

const randomSQL = `
SELECT ` + wordColumns + `
FROM words
WHERE owner_id = $1 AND ($2::boolean IS NULL OR is_learned = $2)
ORDER BY random()
LIMIT 1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key filtered by owner_id.
func (r *Repo) GetByID(ctx context.Context, ownerID, wordID uuid.UUID) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWordRow(querier.QueryRow(ctx, getByIDSQL, wordID, ownerID))
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	return &w, nil
}

// ExistsByText reports whether the owner already has a word whose spanish
// text matches case-insensitively. excludeID skips one row, so an edit can
// keep its own spelling; pass uuid.Nil when creating.
func (r *Repo) ExistsByText(ctx context.Context, ownerID uuid.UUID, spanish string, excludeID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsByTextSQL, ownerID, spanish, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check word exists: %w", err)
	}

	return exists, nil
}

// Find returns the owner's words matching the filter, newest first.
func (r *Repo) Find(ctx context.Context, ownerID uuid.UUID, filter domain.WordFilter) ([]domain.Word, error) {
	limit, offset := normalizeFilter(filter.Limit, filter.Offset)

	b := sq.Select("id", "owner_id", "spanish", "english", "word_type", "themes", "is_learned", "created_at", "updated_at").
		From("words").
		Where(sq.Eq{"owner_id": ownerID}).
		PlaceholderFormat(sq.Dollar)

	if filter.Type != nil {
		b = b.Where(sq.Eq{"word_type": string(*filter.Type)})
	}
	if filter.Theme != nil {
		b = b.Where("? = ANY(themes)", string(*filter.Theme))
	}
	if filter.IsLearned != nil {
		b = b.Where(sq.Eq{"is_learned": *filter.IsLearned})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"spanish": pattern},
			sq.ILike{"english": pattern},
		})
	}

	query, args, err := b.
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find words query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}
	defer rows.Close()

	words, err := scanWords(rows)
	if err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}

	return words, nil
}

// Random returns one of the owner's words chosen uniformly at random,
// optionally restricted by the learned flag. Returns domain.ErrNotFound
// when nothing matches.
func (r *Repo) Random(ctx context.Context, ownerID uuid.UUID, learned *bool) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	w, err := scanWordRow(querier.QueryRow(ctx, randomSQL, ownerID, learned))
	if err != nil {
		return nil, postgres.MapError(err, "word", uuid.Nil)
	}

	return &w, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new word and returns the persisted domain.Word.
// A case-insensitive duplicate within the owner results in
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, spanish, english string, wordType domain.WordType, themes []domain.Theme) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	w, err := scanWordRow(querier.QueryRow(ctx, createSQL,
		id, ownerID, spanish, english, string(wordType), themesToStrings(themes), false, now))
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	return &w, nil
}

// Update replaces the editable fields of a word.
// Returns domain.ErrNotFound if the word does not exist or belongs to
// another owner.
func (r *Repo) Update(ctx context.Context, ownerID, wordID uuid.UUID, spanish, english string, wordType domain.WordType, themes []domain.Theme) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	w, err := scanWordRow(querier.QueryRow(ctx, updateSQL,
		wordID, ownerID, spanish, english, string(wordType), themesToStrings(themes), now))
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	return &w, nil
}

// SetLearned flips the learned flag and returns the updated word.
func (r *Repo) SetLearned(ctx context.Context, ownerID, wordID uuid.UUID, learned bool) (*domain.Word, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)

	w, err := scanWordRow(querier.QueryRow(ctx, setLearnedSQL, wordID, ownerID, learned, now))
	if err != nil {
		return nil, postgres.MapError(err, "word", wordID)
	}

	return &w, nil
}

// Delete removes a word by ID. Examples and attempts go with it via
// ON DELETE CASCADE. Returns domain.ErrNotFound if 0 rows affected.
func (r *Repo) Delete(ctx context.Context, ownerID, wordID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, wordID, ownerID)
	if err != nil {
		return postgres.MapError(err, "word", wordID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", wordID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanWords scans multiple rows into a domain.Word slice.
func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var words []domain.Word
	for rows.Next() {
		w, err := scanWordFromRows(rows)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if words == nil {
		words = []domain.Word{}
	}

	return words, nil
}

// scanWordFromRows scans a single word row from pgx.Rows.
func scanWordFromRows(rows pgx.Rows) (domain.Word, error) {
	var (
		w        domain.Word
		wordType string
		themes   []string
	)

	if err := rows.Scan(&w.ID, &w.OwnerID, &w.Spanish, &w.English, &wordType,
		&themes, &w.IsLearned, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return domain.Word{}, err
	}

	w.Type = domain.WordType(wordType)
	w.Themes = themesFromStrings(themes)

	return w, nil
}

// scanWordRow scans a single pgx.Row into a domain.Word.
func scanWordRow(row pgx.Row) (domain.Word, error) {
	var (
		w        domain.Word
		wordType string
		themes   []string
	)

	if err := row.Scan(&w.ID, &w.OwnerID, &w.Spanish, &w.English, &wordType,
		&themes, &w.IsLearned, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return domain.Word{}, err
	}

	w.Type = domain.WordType(wordType)
	w.Themes = themesFromStrings(themes)

	return w, nil
}

// ---------------------------------------------------------------------------
// text[] mapping helpers
// ---------------------------------------------------------------------------

func themesToStrings(themes []domain.Theme) []string {
	out := make([]string, len(themes))
	for i, t := range themes {
		out[i] = string(t)
	}
	return out
}

func themesFromStrings(raw []string) []domain.Theme {
	out := make([]domain.Theme, len(raw))
	for i, s := range raw {
		out[i] = domain.Theme(s)
	}
	return out
}
