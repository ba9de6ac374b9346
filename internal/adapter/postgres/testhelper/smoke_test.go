package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	word := SeedWord(t, pool, uuid.New())

	// Verify the word exists in DB via SELECT.
	var spanish string
	err := pool.QueryRow(
		context.Background(),
		`SELECT spanish FROM words WHERE id = $1`,
		word.ID,
	).Scan(&spanish)
	if err != nil {
		t.Fatalf("expected word in DB, got error: %v", err)
	}

	if spanish != word.Spanish {
		t.Fatalf("expected spanish %q, got %q", word.Spanish, spanish)
	}
}
