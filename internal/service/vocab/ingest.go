package vocab

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/palabra-app/palabra-backend/internal/domain"
	"github.com/palabra-app/palabra-backend/internal/llm"
)

// PlaceholderEnglish marks a word saved without a real translation because
// generation failed for the whole batch.
const PlaceholderEnglish = "needs translation"

// Skip reasons reported in IngestResult.
const (
	SkipReasonDuplicate = "duplicate"
	SkipReasonDropped   = "dropped by validation"
	SkipReasonFailed    = "save failed"
)

// SkippedItem is one input item that was not saved, with the reason.
type SkippedItem struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// IngestResult summarizes one bulk ingestion.
type IngestResult struct {
	Saved     []domain.Word `json:"saved"`
	Skipped   []SkippedItem `json:"skipped"`
	Truncated bool          `json:"truncated"`
}

// IngestBulk normalizes raw vocabulary text, enriches it with a single
// generation call, and persists each surviving record under the owner.
// Per-record isolation: a duplicate or failed save skips that record and
// continues. When the whole generation fails, placeholder records are saved
// instead of dropping the user's input.
func (s *Service) IngestBulk(ctx context.Context, ownerID uuid.UUID, rawText string) (*IngestResult, error) {
	items := domain.ParseBulkInput(rawText)
	if len(items) == 0 {
		return nil, domain.NewValidationError("text", "no usable words")
	}

	items, truncated := domain.Truncate(items, s.cfg.MaxBulkItems)

	records, err := s.generator.ProcessWords(ctx, items)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrGenerationFailed), errors.Is(err, domain.ErrInvalidGeneration):
		// The user's words are worth more than the enrichment. Save them
		// with placeholder translations to be edited later.
		s.log.Warn("bulk generation failed, saving placeholders",
			"owner_id", ownerID, "items", len(items), "error", err)
		records = placeholderRecords(items)
	default:
		return nil, fmt.Errorf("process words: %w", err)
	}

	result := &IngestResult{
		Saved:     []domain.Word{},
		Skipped:   []SkippedItem{},
		Truncated: truncated,
	}

	covered := make(map[string]bool, len(records))
	for _, rec := range records {
		covered[strings.ToLower(rec.Spanish)] = true

		exists, err := s.words.ExistsByText(ctx, ownerID, rec.Spanish, uuid.Nil)
		if err != nil {
			return nil, fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			result.Skipped = append(result.Skipped, SkippedItem{Item: rec.Spanish, Reason: SkipReasonDuplicate})
			continue
		}

		word, err := s.words.Create(ctx, ownerID, rec.Spanish, rec.English, rec.Type, rec.Themes)
		if err != nil {
			// Concurrent inserts can still race past the exists check.
			if errors.Is(err, domain.ErrAlreadyExists) {
				result.Skipped = append(result.Skipped, SkippedItem{Item: rec.Spanish, Reason: SkipReasonDuplicate})
				continue
			}
			s.log.Warn("save word failed", "owner_id", ownerID, "spanish", rec.Spanish, "error", err)
			result.Skipped = append(result.Skipped, SkippedItem{Item: rec.Spanish, Reason: SkipReasonFailed})
			continue
		}

		result.Saved = append(result.Saved, *word)
	}

	// Input items the validator silently discarded still get reported.
	for _, item := range items {
		if !covered[strings.ToLower(item)] {
			result.Skipped = append(result.Skipped, SkippedItem{Item: item, Reason: SkipReasonDropped})
		}
	}

	s.log.Info("bulk ingest done",
		"owner_id", ownerID, "saved", len(result.Saved),
		"skipped", len(result.Skipped), "truncated", result.Truncated)

	return result, nil
}

// placeholderRecords builds minimal records for every input item when
// generation is unavailable.
func placeholderRecords(items []string) []llm.WordRecord {
	records := make([]llm.WordRecord, len(items))
	for i, item := range items {
		records[i] = llm.WordRecord{
			Spanish: item,
			English: PlaceholderEnglish,
			Type:    domain.WordTypeOther,
			Themes:  []domain.Theme{domain.ThemeOther},
		}
	}
	return records
}
