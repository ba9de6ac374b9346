package llm

import (
	"fmt"
	"strings"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

func wordTypeList() string {
	names := make([]string, len(domain.WordTypes))
	for i, t := range domain.WordTypes {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func themeList() string {
	names := make([]string, len(domain.Themes))
	for i, t := range domain.Themes {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

// buildBulkPrompt creates the prompt for translating and classifying a
// batch of Spanish words in a single call.
func buildBulkPrompt(words []string) string {
	var list strings.Builder
	for i, w := range words {
		fmt.Fprintf(&list, "%d. %s\n", i+1, w)
	}

	return fmt.Sprintf(`You are a Spanish-English vocabulary processing assistant.

For each Spanish word or phrase below, provide:
1. English translation
2. Word type: %s
3. 1-3 relevant themes from: %s

Spanish words to process:
%s
Return ONLY valid JSON in this exact format (no markdown, no explanation):
[
  {
    "spanish": "word",
    "english": "translation",
    "word_type": "type",
    "themes": ["theme1", "theme2"]
  }
]

Rules:
- Keep original Spanish text exactly as provided (including / for gender variations)
- Provide natural English translations
- For phrases (2+ words), use word_type "phrase"
- Assign 1-3 most relevant themes (max 3)
- If unsure about theme, use "other"
- Return results in same order as input`, wordTypeList(), themeList(), list.String())
}

// buildExamplesPrompt creates the prompt for generating count example
// sentences for one word.
func buildExamplesPrompt(word *domain.Word, count int) string {
	return fmt.Sprintf(`You are a Spanish language tutor creating study material.

Generate %d natural Spanish example sentences using the word "%s" (%s, English: "%s").

Return ONLY valid JSON in this exact format (no markdown, no explanation):
[
  {
    "spanish": "example sentence in Spanish",
    "english": "English translation"
  }
]

Rules:
- Each sentence must use "%s" naturally, in everyday contexts
- Keep sentences simple enough for an intermediate learner
- Vary the grammatical structures across sentences
- Provide an accurate English translation for each sentence`,
		count, word.Spanish, word.Type, word.English, word.Spanish)
}

// buildFeedbackPrompt creates the prompt for evaluating one submitted
// practice sentence against its target word.
func buildFeedbackPrompt(word *domain.Word, sentence string) string {
	return fmt.Sprintf(`You are a Spanish language tutor grading a learner's sentence.

Target word: "%s" (%s, English: "%s")
Learner's sentence: "%s"

Evaluate whether the sentence uses the target word correctly and is
grammatical Spanish.

Return ONLY valid JSON in this exact format (no markdown, no explanation):
{
  "correctness": "correct" | "partially_correct" | "incorrect",
  "summary": "one or two sentence overall assessment",
  "corrections": ["specific error and its fix"],
  "suggestions": ["way to make the sentence better"],
  "native_tip": "how a native speaker would phrase the same idea"
}

Rules:
- "correct" only if the sentence is grammatical AND uses the target word properly
- "partially_correct" for minor errors (accents, agreement, word order)
- "incorrect" for wrong word usage or broken grammar
- Keep corrections and suggestions short and concrete; empty lists are fine
- Write the summary in English`, word.Spanish, word.Type, word.English, sentence)
}
