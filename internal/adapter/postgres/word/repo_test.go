package word_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/palabra-app/palabra-backend/internal/adapter/postgres/testhelper"
	"github.com/palabra-app/palabra-backend/internal/adapter/postgres/word"
	"github.com/palabra-app/palabra-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*word.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return word.New(pool), pool
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	ownerID := uuid.New()

	created, err := repo.Create(ctx, ownerID, "cocinar", "to cook",
		domain.WordTypeVerb, []domain.Theme{domain.ThemeFood, domain.ThemeHome})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}

	if created.Spanish != "cocinar" {
		t.Errorf("Spanish mismatch: got %q, want %q", created.Spanish, "cocinar")
	}
	if created.Type != domain.WordTypeVerb {
		t.Errorf("Type mismatch: got %q, want %q", created.Type, domain.WordTypeVerb)
	}
	if len(created.Themes) != 2 {
		t.Errorf("Themes length mismatch: got %d, want 2", len(created.Themes))
	}
	if created.IsLearned {
		t.Error("new word must not be learned")
	}

	got, err := repo.GetByID(ctx, ownerID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.ID != created.ID || got.English != "to cook" {
		t.Errorf("GetByID mismatch: got %+v", got)
	}
}

func TestRepo_Create_DuplicateCaseInsensitive(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	ownerID := uuid.New()

	if _, err := repo.Create(ctx, ownerID, "Frío", "cold",
		domain.WordTypeAdjective, []domain.Theme{domain.ThemeWeather}); err != nil {
		t.Fatalf("Create first: unexpected error: %v", err)
	}

	_, err := repo.Create(ctx, ownerID, "FRÍO", "cold",
		domain.WordTypeAdjective, []domain.Theme{domain.ThemeWeather})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// A different owner may hold the same spelling.
	if _, err := repo.Create(ctx, uuid.New(), "frío", "cold",
		domain.WordTypeAdjective, []domain.Theme{domain.ThemeWeather}); err != nil {
		t.Fatalf("Create for other owner: unexpected error: %v", err)
	}
}

func TestRepo_GetByID_WrongOwner(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	seeded := testhelper.SeedWord(t, pool, uuid.New())

	_, err := repo.GetByID(ctx, uuid.New(), seeded.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign owner, got %v", err)
	}
}

func TestRepo_ExistsByText(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	ownerID := uuid.New()
	seeded := testhelper.SeedWord(t, pool, ownerID)

	tests := []struct {
		name      string
		spanish   string
		excludeID uuid.UUID
		want      bool
	}{
		{name: "exact match", spanish: seeded.Spanish, excludeID: uuid.Nil, want: true},
		{name: "case-insensitive match", spanish: "PALABRA-" + seeded.Spanish[len("palabra-"):], excludeID: uuid.Nil, want: true},
		{name: "excluded self", spanish: seeded.Spanish, excludeID: seeded.ID, want: false},
		{name: "absent text", spanish: "no-such-word", excludeID: uuid.Nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsByText(ctx, ownerID, tt.spanish, tt.excludeID)
			if err != nil {
				t.Fatalf("ExistsByText: unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExistsByText(%q) = %v, want %v", tt.spanish, got, tt.want)
			}
		})
	}
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	ownerID := uuid.New()
	seeded := testhelper.SeedWord(t, pool, ownerID)

	updated, err := repo.Update(ctx, ownerID, seeded.ID, "viajar", "to travel",
		domain.WordTypeVerb, []domain.Theme{domain.ThemeTravel})
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}

	if updated.Spanish != "viajar" || updated.English != "to travel" {
		t.Errorf("Update mismatch: got %+v", updated)
	}
	if updated.Type != domain.WordTypeVerb {
		t.Errorf("Type mismatch: got %q", updated.Type)
	}
	if !updated.UpdatedAt.After(seeded.UpdatedAt) {
		t.Error("UpdatedAt must move forward on update")
	}

	_, err = repo.Update(ctx, ownerID, uuid.New(), "x", "y",
		domain.WordTypeOther, []domain.Theme{domain.ThemeOther})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent word, got %v", err)
	}
}

func TestRepo_SetLearned(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	ownerID := uuid.New()
	seeded := testhelper.SeedWord(t, pool, ownerID)

	updated, err := repo.SetLearned(ctx, ownerID, seeded.ID, true)
	if err != nil {
		t.Fatalf("SetLearned: unexpected error: %v", err)
	}
	if !updated.IsLearned {
		t.Error("expected IsLearned=true after SetLearned")
	}

	updated, err = repo.SetLearned(ctx, ownerID, seeded.ID, false)
	if err != nil {
		t.Fatalf("SetLearned back: unexpected error: %v", err)
	}
	if updated.IsLearned {
		t.Error("expected IsLearned=false after reset")
	}
}

func TestRepo_Delete_Cascades(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	ownerID := uuid.New()
	seeded := testhelper.SeedWord(t, pool, ownerID)
	testhelper.SeedExamples(t, pool, seeded.ID, 2)
	testhelper.SeedAttempt(t, pool, ownerID, seeded.ID, domain.TierCorrect)

	if err := repo.Delete(ctx, ownerID, seeded.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	var examples, attempts int
	if err := pool.QueryRow(ctx,
		`SELECT count(*) FROM generated_examples WHERE word_id = $1`, seeded.ID).Scan(&examples); err != nil {
		t.Fatalf("count examples: %v", err)
	}
	if err := pool.QueryRow(ctx,
		`SELECT count(*) FROM practice_attempts WHERE word_id = $1`, seeded.ID).Scan(&attempts); err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if examples != 0 || attempts != 0 {
		t.Errorf("cascade incomplete: %d examples, %d attempts remain", examples, attempts)
	}

	if err := repo.Delete(ctx, ownerID, seeded.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestRepo_Find(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	ctx := context.Background()

	ownerID := uuid.New()

	verb, err := repo.Create(ctx, ownerID, "correr", "to run",
		domain.WordTypeVerb, []domain.Theme{domain.ThemeSports})
	if err != nil {
		t.Fatalf("Create verb: %v", err)
	}
	noun, err := repo.Create(ctx, ownerID, "lluvia", "rain",
		domain.WordTypeNoun, []domain.Theme{domain.ThemeWeather})
	if err != nil {
		t.Fatalf("Create noun: %v", err)
	}
	if _, err := repo.SetLearned(ctx, ownerID, noun.ID, true); err != nil {
		t.Fatalf("SetLearned: %v", err)
	}

	t.Run("no filter returns all", func(t *testing.T) {
		got, err := repo.Find(ctx, ownerID, domain.WordFilter{})
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 words, got %d", len(got))
		}
	})

	t.Run("by type", func(t *testing.T) {
		wt := domain.WordTypeVerb
		got, err := repo.Find(ctx, ownerID, domain.WordFilter{Type: &wt})
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 1 || got[0].ID != verb.ID {
			t.Errorf("expected only the verb, got %+v", got)
		}
	})

	t.Run("by theme", func(t *testing.T) {
		th := domain.ThemeWeather
		got, err := repo.Find(ctx, ownerID, domain.WordFilter{Theme: &th})
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 1 || got[0].ID != noun.ID {
			t.Errorf("expected only the weather word, got %+v", got)
		}
	})

	t.Run("by learned flag", func(t *testing.T) {
		learned := true
		got, err := repo.Find(ctx, ownerID, domain.WordFilter{IsLearned: &learned})
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 1 || got[0].ID != noun.ID {
			t.Errorf("expected only the learned word, got %+v", got)
		}
	})

	t.Run("by search in either language", func(t *testing.T) {
		got, err := repo.Find(ctx, ownerID, domain.WordFilter{Search: "rain"})
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 1 || got[0].ID != noun.ID {
			t.Errorf("expected english match, got %+v", got)
		}

		got, err = repo.Find(ctx, ownerID, domain.WordFilter{Search: "CORRER"})
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 1 || got[0].ID != verb.ID {
			t.Errorf("expected case-insensitive spanish match, got %+v", got)
		}
	})

	t.Run("foreign owner sees nothing", func(t *testing.T) {
		got, err := repo.Find(ctx, uuid.New(), domain.WordFilter{})
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %d words", len(got))
		}
	})
}

func TestRepo_Random(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	ownerID := uuid.New()

	_, err := repo.Random(ctx, ownerID, nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty vocabulary, got %v", err)
	}

	seeded := testhelper.SeedWord(t, pool, ownerID)

	got, err := repo.Random(ctx, ownerID, nil)
	if err != nil {
		t.Fatalf("Random: unexpected error: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("Random returned foreign word: got %s, want %s", got.ID, seeded.ID)
	}

	// The only seeded word is unlearned: restricting to learned finds nothing.
	learned := true
	_, err = repo.Random(ctx, ownerID, &learned)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for learned-only pool, got %v", err)
	}

	learned = false
	got, err = repo.Random(ctx, ownerID, &learned)
	if err != nil {
		t.Fatalf("Random unlearned: unexpected error: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("Random unlearned: got %s, want %s", got.ID, seeded.ID)
	}
}
