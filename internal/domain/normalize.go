package domain

import (
	"strings"
	"unicode"
)

// NormalizeText prepares text for storage and comparison:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Diacritics and the gender slash are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	// Compress multiple spaces into one.
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseBulkInput turns one raw block of user input into an ordered list of
// cleaned words and phrases:
//   - items are separated by newlines and/or commas
//   - each item keeps only letters (accents included), inner spaces, and the
//     gender-alternation slash ("lejo/a")
//   - internal whitespace is collapsed, empty results are dropped
//   - duplicates are removed case-insensitively, keeping the first-seen
//     casing and order
//
// Deterministic: the same input always yields the same list.
func ParseBulkInput(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	// Commas and newlines are equivalent separators.
	raw = strings.ReplaceAll(raw, ",", "\n")

	seen := make(map[string]struct{})
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		word := cleanItem(line)
		if word == "" {
			continue
		}
		key := strings.ToLower(word)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		words = append(words, word)
	}
	return words
}

// Truncate caps a word list at max items, reporting whether anything was
// dropped. max <= 0 leaves the list untouched.
func Truncate(words []string, max int) ([]string, bool) {
	if max <= 0 || len(words) <= max {
		return words, false
	}
	return words[:max], true
}

// cleanItem strips everything except letters, spaces, and '/', then
// collapses runs of whitespace into single spaces.
func cleanItem(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '/':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
