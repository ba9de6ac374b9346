package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

// Length caps for bulk records. Anything longer is a malformed record, not
// vocabulary.
const (
	maxSpanishLen = 50
	maxEnglishLen = 200
)

// WordRecord is one validated entry from a bulk processing response.
// Type and Themes are guaranteed to belong to their closed sets.
type WordRecord struct {
	Spanish string
	English string
	Type    domain.WordType
	Themes  []domain.Theme
}

// ExampleRecord is one validated example sentence pair.
type ExampleRecord struct {
	Spanish string
	English string
}

type rawWordRecord struct {
	Spanish  *string  `json:"spanish"`
	English  *string  `json:"english"`
	WordType *string  `json:"word_type"`
	Themes   []string `json:"themes"`
}

type rawExampleRecord struct {
	Spanish string `json:"spanish"`
	English string `json:"english"`
}

type rawFeedback struct {
	Correctness *string  `json:"correctness"`
	Summary     *string  `json:"summary"`
	Corrections []string `json:"corrections"`
	Suggestions []string `json:"suggestions"`
	NativeTip   string   `json:"native_tip"`
}

// ParseWordRecords validates a bulk processing response. Records missing
// required fields, echoing the input as its own translation, or exceeding
// length caps are dropped; word types and themes outside the closed sets
// are coerced. Declared order is preserved. Returns
// domain.ErrInvalidGeneration when nothing usable remains.
func ParseWordRecords(raw string) ([]WordRecord, error) {
	var items []rawWordRecord
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGeneration, err)
	}

	records := make([]WordRecord, 0, len(items))
	for _, it := range items {
		if it.Spanish == nil || it.English == nil || it.WordType == nil || it.Themes == nil {
			continue
		}
		spanish := strings.TrimSpace(*it.Spanish)
		english := strings.TrimSpace(*it.English)
		if spanish == "" || english == "" {
			continue
		}
		// A "translation" identical to the source is a model failure.
		if strings.EqualFold(spanish, english) {
			continue
		}
		if len(spanish) > maxSpanishLen || len(english) > maxEnglishLen {
			continue
		}
		records = append(records, WordRecord{
			Spanish: spanish,
			English: english,
			Type:    domain.CoerceWordType(*it.WordType),
			Themes:  domain.CoerceThemes(it.Themes),
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no usable word records", domain.ErrInvalidGeneration)
	}
	return records, nil
}

// ParseExamples validates an example-generation response. Unlike bulk mode
// the whole response is rejected unless at least one complete sentence pair
// is present.
func ParseExamples(raw string) ([]ExampleRecord, error) {
	var items []rawExampleRecord
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGeneration, err)
	}

	examples := make([]ExampleRecord, 0, len(items))
	for _, it := range items {
		spanish := strings.TrimSpace(it.Spanish)
		english := strings.TrimSpace(it.English)
		if spanish == "" || english == "" {
			continue
		}
		examples = append(examples, ExampleRecord{Spanish: spanish, English: english})
	}

	if len(examples) == 0 {
		return nil, fmt.Errorf("%w: no usable example sentences", domain.ErrInvalidGeneration)
	}
	return examples, nil
}

// ParseFeedback validates a sentence-evaluation response. The correctness
// tier and summary are required; an unknown tier rejects the whole
// response rather than being coerced, because correctness drives
// persistence.
func ParseFeedback(raw string) (*domain.Feedback, error) {
	var fb rawFeedback
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &fb); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidGeneration, err)
	}

	if fb.Correctness == nil || fb.Summary == nil {
		return nil, fmt.Errorf("%w: feedback missing required fields", domain.ErrInvalidGeneration)
	}

	tier := domain.CorrectnessTier(strings.TrimSpace(*fb.Correctness))
	if !tier.IsValid() {
		return nil, fmt.Errorf("%w: unknown correctness tier %q", domain.ErrInvalidGeneration, tier)
	}

	summary := strings.TrimSpace(*fb.Summary)
	if summary == "" {
		return nil, fmt.Errorf("%w: feedback summary empty", domain.ErrInvalidGeneration)
	}

	return &domain.Feedback{
		Tier:        tier,
		Summary:     summary,
		Corrections: compactStrings(fb.Corrections),
		Suggestions: compactStrings(fb.Suggestions),
		NativeTip:   strings.TrimSpace(fb.NativeTip),
	}, nil
}

// stripCodeFence removes a surrounding markdown code fence (``` or
// ```json) if the model wrapped its output in one.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
