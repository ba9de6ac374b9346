package domain

import (
	"reflect"
	"testing"
)

func TestWordType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wordType WordType
		want     bool
	}{
		{WordTypeVerb, true},
		{WordTypeNoun, true},
		{WordTypeAdjective, true},
		{WordTypeAdverb, true},
		{WordTypePhrase, true},
		{WordTypeFunctionWord, true},
		{WordTypeNumber, true},
		{WordTypeOther, true},
		{WordType("pronoun"), false},
		{WordType("VERB"), false},
		{WordType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.wordType), func(t *testing.T) {
			t.Parallel()
			if got := tt.wordType.IsValid(); got != tt.want {
				t.Errorf("WordType(%q).IsValid() = %v, want %v", tt.wordType, got, tt.want)
			}
		})
	}
}

func TestCoerceWordType(t *testing.T) {
	t.Parallel()

	if got := CoerceWordType("verb"); got != WordTypeVerb {
		t.Errorf("got %q, want verb", got)
	}
	if got := CoerceWordType("gerund"); got != WordTypeOther {
		t.Errorf("got %q, want other for unknown type", got)
	}
	if got := CoerceWordType(""); got != WordTypeOther {
		t.Errorf("got %q, want other for empty type", got)
	}
}

func TestTheme_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme Theme
		want  bool
	}{
		{ThemeWeather, true},
		{ThemeFood, true},
		{ThemeHealth, true},
		{ThemeOther, true},
		{Theme("cooking"), false},
		{Theme(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.theme), func(t *testing.T) {
			t.Parallel()
			if got := tt.theme.IsValid(); got != tt.want {
				t.Errorf("Theme(%q).IsValid() = %v, want %v", tt.theme, got, tt.want)
			}
		})
	}
}

func TestCoerceThemes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  []string
		want []Theme
	}{
		{
			name: "valid themes pass through",
			raw:  []string{"weather", "emotions"},
			want: []Theme{ThemeWeather, ThemeEmotions},
		},
		{
			name: "invalid themes filtered",
			raw:  []string{"weather", "cooking", "food"},
			want: []Theme{ThemeWeather, ThemeFood},
		},
		{
			name: "truncated to three",
			raw:  []string{"weather", "food", "work", "travel"},
			want: []Theme{ThemeWeather, ThemeFood, ThemeWork},
		},
		{
			name: "empty after filtering falls back to other",
			raw:  []string{"cooking", "restaurants"},
			want: []Theme{ThemeOther},
		},
		{
			name: "nil input falls back to other",
			raw:  nil,
			want: []Theme{ThemeOther},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CoerceThemes(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CoerceThemes(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCorrectnessTier_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tier CorrectnessTier
		want bool
	}{
		{TierCorrect, true},
		{TierPartiallyCorrect, true},
		{TierIncorrect, true},
		{CorrectnessTier("almost"), false},
		{CorrectnessTier(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			t.Parallel()
			if got := tt.tier.IsValid(); got != tt.want {
				t.Errorf("CorrectnessTier(%q).IsValid() = %v, want %v", tt.tier, got, tt.want)
			}
		})
	}
}

func TestFeedback_IsCorrect(t *testing.T) {
	t.Parallel()

	if !(Feedback{Tier: TierCorrect}).IsCorrect() {
		t.Error("correct tier must report IsCorrect")
	}
	if (Feedback{Tier: TierPartiallyCorrect}).IsCorrect() {
		t.Error("partially_correct must not report IsCorrect")
	}
	if (Feedback{Tier: TierIncorrect}).IsCorrect() {
		t.Error("incorrect must not report IsCorrect")
	}
}
