package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedWord inserts a word for the given owner and returns it. The spanish
// text carries a unique suffix so repeated seeds never collide on the
// per-owner uniqueness index.
func SeedWord(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Word {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	word := domain.Word{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Spanish:   "palabra-" + suffix,
		English:   "word " + suffix,
		Type:      domain.WordTypeNoun,
		Themes:    []domain.Theme{domain.ThemeOther},
		CreatedAt: now,
		UpdatedAt: now,
	}

	themes := make([]string, len(word.Themes))
	for i, th := range word.Themes {
		themes[i] = string(th)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO words (id, owner_id, spanish, english, word_type, themes, is_learned, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		word.ID, word.OwnerID, word.Spanish, word.English, string(word.Type), themes, word.IsLearned, word.CreatedAt, word.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert word: %v", err)
	}

	return word
}

// SeedExamples inserts n example sentence pairs for a word and returns them
// in insertion order.
func SeedExamples(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, n int) []domain.GeneratedExample {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	examples := make([]domain.GeneratedExample, n)
	for i := 0; i < n; i++ {
		e := domain.GeneratedExample{
			ID:          uuid.New(),
			WordID:      wordID,
			Spanish:     "Frase " + suffix + "-" + string(rune('A'+i)),
			English:     "Sentence " + suffix + "-" + string(rune('A'+i)),
			GeneratedAt: time.Now().UTC().Truncate(time.Microsecond),
		}

		_, err := pool.Exec(ctx,
			`INSERT INTO generated_examples (id, word_id, spanish, english, generated_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			e.ID, e.WordID, e.Spanish, e.English, e.GeneratedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedExamples insert example[%d]: %v", i, err)
		}
		examples[i] = e
	}

	return examples
}

// SeedAttempt inserts one graded practice attempt for a word and returns it.
func SeedAttempt(t *testing.T, pool *pgxpool.Pool, ownerID, wordID uuid.UUID, tier domain.CorrectnessTier) domain.PracticeAttempt {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	attempt := domain.PracticeAttempt{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		WordID:   wordID,
		Sentence: "Oración de prueba " + suffix,
		Feedback: domain.Feedback{
			Tier:        tier,
			Summary:     "Seeded feedback " + suffix,
			Corrections: []string{},
			Suggestions: []string{},
		},
		AttemptedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	attempt.IsCorrect = attempt.Feedback.IsCorrect()

	_, err := pool.Exec(ctx,
		`INSERT INTO practice_attempts
		     (id, owner_id, word_id, sentence, correctness, summary, corrections, suggestions, native_tip, is_correct, attempted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		attempt.ID, attempt.OwnerID, attempt.WordID, attempt.Sentence,
		string(attempt.Feedback.Tier), attempt.Feedback.Summary,
		attempt.Feedback.Corrections, attempt.Feedback.Suggestions, attempt.Feedback.NativeTip,
		attempt.IsCorrect, attempt.AttemptedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAttempt insert attempt: %v", err)
	}

	return attempt
}
