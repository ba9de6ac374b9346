package vocab

import (
	"strings"

	"github.com/palabra-app/palabra-backend/internal/domain"
)

// EditWordInput carries the editable fields of a word. All fields are
// required; themes are capped at domain.MaxThemesPerWord.
type EditWordInput struct {
	Spanish string
	English string
	Type    domain.WordType
	Themes  []domain.Theme
}

// Validate checks field presence, length caps, and closed-set membership.
func (in *EditWordInput) Validate() error {
	var fields []domain.FieldError

	in.Spanish = strings.TrimSpace(in.Spanish)
	in.English = strings.TrimSpace(in.English)

	if in.Spanish == "" {
		fields = append(fields, domain.FieldError{Field: "spanish", Message: "required"})
	} else if len(in.Spanish) > 50 {
		fields = append(fields, domain.FieldError{Field: "spanish", Message: "too long (max 50)"})
	}

	if in.English == "" {
		fields = append(fields, domain.FieldError{Field: "english", Message: "required"})
	} else if len(in.English) > 200 {
		fields = append(fields, domain.FieldError{Field: "english", Message: "too long (max 200)"})
	}

	if !in.Type.IsValid() {
		fields = append(fields, domain.FieldError{Field: "word_type", Message: "unknown word type"})
	}

	if len(in.Themes) == 0 {
		fields = append(fields, domain.FieldError{Field: "themes", Message: "required"})
	} else if len(in.Themes) > domain.MaxThemesPerWord {
		fields = append(fields, domain.FieldError{Field: "themes", Message: "too many (max 3)"})
	} else {
		for _, th := range in.Themes {
			if !th.IsValid() {
				fields = append(fields, domain.FieldError{Field: "themes", Message: "unknown theme"})
				break
			}
		}
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
