package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a vocabulary entry owned by exactly one account.
// Spanish holds the original casing as the user typed it; uniqueness is
// enforced case-insensitively per owner.
type Word struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Spanish   string
	English   string
	Type      WordType
	Themes    []Theme
	IsLearned bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GeneratedExample is an AI-produced example sentence pair for one Word.
// Examples accumulate across regenerations; they are removed only by an
// explicit clear or by cascade from Word deletion.
type GeneratedExample struct {
	ID          uuid.UUID
	WordID      uuid.UUID
	Spanish     string
	English     string
	GeneratedAt time.Time
}

// Feedback is the structured evaluation of one submitted practice sentence.
type Feedback struct {
	Tier        CorrectnessTier
	Summary     string
	Corrections []string
	Suggestions []string
	NativeTip   string
}

// IsCorrect reports whether the attempt was fully correct.
// partially_correct counts as not correct; the tier stays authoritative.
func (f Feedback) IsCorrect() bool {
	return f.Tier == TierCorrect
}

// PracticeAttempt records one submitted sentence and the feedback it
// received. An attempt is never persisted without a complete feedback
// payload.
type PracticeAttempt struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	WordID      uuid.UUID
	Sentence    string
	Feedback    Feedback
	IsCorrect   bool
	AttemptedAt time.Time
}

// WordFilter narrows Find results. Zero values mean "no constraint".
type WordFilter struct {
	Type      *WordType
	Theme     *Theme
	IsLearned *bool
	Search    string
	Limit     int
	Offset    int
}
