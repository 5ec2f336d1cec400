package domain

import (
	"strings"
	"time"
)

// Field length limits enforced on vocabulary input.
const (
	MaxVocabularyWordLength    = 200
	MaxVocabularyExampleLength = 1000
)

// Vocabulary represents an English word paired with its Japanese
// translation and optional example sentences. The ID is assigned
// sequentially by the database, so a Vocabulary is zero-ID until stored.
type Vocabulary struct {
	ID        int       `json:"id"`
	EnWord    string    `json:"en_word"`
	JaWord    string    `json:"ja_word"`
	EnExample *string   `json:"en_example"`
	JaExample *string   `json:"ja_example"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewVocabulary creates a new Vocabulary entry. Words are trimmed;
// examples are trimmed and collapsed to nil when empty. Returns
// FieldViolations if validation fails.
func NewVocabulary(enWord, jaWord string, enExample, jaExample *string) (*Vocabulary, error) {
	entry := &Vocabulary{
		EnWord:    strings.TrimSpace(enWord),
		JaWord:    strings.TrimSpace(jaWord),
		EnExample: normalizeExample(enExample),
		JaExample: normalizeExample(jaExample),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Rewrite replaces the entry's words and examples. Timestamps are left
// alone; updated_at is refreshed by the storage layer on write.
func (v *Vocabulary) Rewrite(enWord, jaWord string, enExample, jaExample *string) error {
	updated := *v
	updated.EnWord = strings.TrimSpace(enWord)
	updated.JaWord = strings.TrimSpace(jaWord)
	updated.EnExample = normalizeExample(enExample)
	updated.JaExample = normalizeExample(jaExample)

	if err := updated.Validate(); err != nil {
		return err
	}

	*v = updated
	return nil
}

// Validate checks if the Vocabulary has valid data. Returns
// FieldViolations naming every failing field, or nil if valid.
func (v *Vocabulary) Validate() error {
	var violations FieldViolations

	if v.EnWord == "" {
		violations.Add("en_word", "cannot be empty")
	} else if len(v.EnWord) > MaxVocabularyWordLength {
		violations.Add("en_word", "cannot exceed 200 characters")
	}

	if v.JaWord == "" {
		violations.Add("ja_word", "cannot be empty")
	} else if len(v.JaWord) > MaxVocabularyWordLength {
		violations.Add("ja_word", "cannot exceed 200 characters")
	}

	if v.EnExample != nil && len(*v.EnExample) > MaxVocabularyExampleLength {
		violations.Add("en_example", "cannot exceed 1000 characters")
	}

	if v.JaExample != nil && len(*v.JaExample) > MaxVocabularyExampleLength {
		violations.Add("ja_example", "cannot exceed 1000 characters")
	}

	return violations.ErrOrNil()
}

// normalizeExample trims an optional example sentence, returning nil for
// missing or whitespace-only values.
func normalizeExample(example *string) *string {
	if example == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*example)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
