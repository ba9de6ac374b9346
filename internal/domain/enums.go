package domain

// WordType represents the grammatical category of a vocabulary word.
type WordType string

const (
	WordTypeVerb         WordType = "verb"
	WordTypeNoun         WordType = "noun"
	WordTypeAdjective    WordType = "adjective"
	WordTypeAdverb       WordType = "adverb"
	WordTypePhrase       WordType = "phrase"
	WordTypeFunctionWord WordType = "function_word"
	WordTypeNumber       WordType = "number"
	WordTypeOther        WordType = "other"
)

// WordTypes lists every valid word type, in prompt order.
var WordTypes = []WordType{
	WordTypeVerb, WordTypeNoun, WordTypeAdjective, WordTypeAdverb,
	WordTypePhrase, WordTypeFunctionWord, WordTypeNumber, WordTypeOther,
}

func (t WordType) String() string { return string(t) }

func (t WordType) IsValid() bool {
	switch t {
	case WordTypeVerb, WordTypeNoun, WordTypeAdjective, WordTypeAdverb,
		WordTypePhrase, WordTypeFunctionWord, WordTypeNumber, WordTypeOther:
		return true
	}
	return false
}

// CoerceWordType returns the word type unchanged when it belongs to the
// closed set, otherwise the catch-all WordTypeOther. Generation output is
// never trusted to conform.
func CoerceWordType(raw string) WordType {
	t := WordType(raw)
	if t.IsValid() {
		return t
	}
	return WordTypeOther
}

// Theme represents a topical tag attached to a vocabulary word.
type Theme string

const (
	ThemeWeather  Theme = "weather"
	ThemeFood     Theme = "food"
	ThemeWork     Theme = "work"
	ThemeTravel   Theme = "travel"
	ThemeFamily   Theme = "family"
	ThemeEmotions Theme = "emotions"
	ThemeSports   Theme = "sports"
	ThemeHome     Theme = "home"
	ThemeHealth   Theme = "health"
	ThemeOther    Theme = "other"
)

// Themes lists every valid theme, in prompt order.
var Themes = []Theme{
	ThemeWeather, ThemeFood, ThemeWork, ThemeTravel, ThemeFamily,
	ThemeEmotions, ThemeSports, ThemeHome, ThemeHealth, ThemeOther,
}

// MaxThemesPerWord caps how many themes a word may carry.
const MaxThemesPerWord = 3

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeWeather, ThemeFood, ThemeWork, ThemeTravel, ThemeFamily,
		ThemeEmotions, ThemeSports, ThemeHome, ThemeHealth, ThemeOther:
		return true
	}
	return false
}

// CoerceThemes filters raw theme names against the closed set, truncates to
// MaxThemesPerWord, and falls back to ThemeOther when nothing survives.
func CoerceThemes(raw []string) []Theme {
	themes := make([]Theme, 0, MaxThemesPerWord)
	for _, r := range raw {
		t := Theme(r)
		if !t.IsValid() {
			continue
		}
		themes = append(themes, t)
		if len(themes) == MaxThemesPerWord {
			break
		}
	}
	if len(themes) == 0 {
		themes = append(themes, ThemeOther)
	}
	return themes
}

// CorrectnessTier represents the graded outcome of a practice attempt.
type CorrectnessTier string

const (
	TierCorrect          CorrectnessTier = "correct"
	TierPartiallyCorrect CorrectnessTier = "partially_correct"
	TierIncorrect        CorrectnessTier = "incorrect"
)

func (t CorrectnessTier) String() string { return string(t) }

func (t CorrectnessTier) IsValid() bool {
	switch t {
	case TierCorrect, TierPartiallyCorrect, TierIncorrect:
		return true
	}
	return false
}
