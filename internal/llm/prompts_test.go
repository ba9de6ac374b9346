package llm

import (
	"strings"
	"testing"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

func testWord() *domain.Word {
	return &domain.Word{
		Spanish: "cocinar",
		English: "to cook",
		Type:    domain.WordTypeVerb,
		Themes:  []domain.Theme{domain.ThemeFood},
	}
}

func TestBuildBulkPrompt(t *testing.T) {
	t.Parallel()

	prompt := buildBulkPrompt([]string{"Frío", "lejo/a"})

	for _, want := range []string{
		"1. Frío",
		"2. lejo/a",
		"function_word", // the closed word-type set must be spelled out
		"weather",       // and the closed theme set
		"same order as input",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("bulk prompt missing %q", want)
		}
	}
}

func TestBuildExamplesPrompt(t *testing.T) {
	t.Parallel()

	prompt := buildExamplesPrompt(testWord(), 3)

	for _, want := range []string{"3 natural", `"cocinar"`, `"to cook"`, "verb"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("examples prompt missing %q", want)
		}
	}
}

func TestBuildFeedbackPrompt(t *testing.T) {
	t.Parallel()

	prompt := buildFeedbackPrompt(testWord(), "Yo cocino pasta.")

	for _, want := range []string{
		`"cocinar"`,
		`"Yo cocino pasta."`,
		"partially_correct",
		"native_tip",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("feedback prompt missing %q", want)
		}
	}
}
