package main

import (
	"context"
	"fmt"

	"github.com/yamato-dev/kotoba-api/internal/domain"
)

// starterVocabulary is the seed data inserted by the -seed flag.
var starterVocabulary = []struct {
	enWord    string
	jaWord    string
	enExample string
	jaExample string
}{
	{"apple", "りんご", "I eat an apple every day.", "私は毎日りんごを食べます。"},
	{"book", "本", "This is an interesting book.", "これは面白い本です。"},
	{"computer", "コンピューター", "I use my computer for work.", "私は仕事でコンピューターを使います。"},
	{"study", "勉強する", "I study English every morning.", "私は毎朝英語を勉強します。"},
	{"friend", "友達", "She is my best friend.", "彼女は私の親友です。"},
}

// seedVocabulary inserts the starter vocabulary entries if the table is
// empty. A non-empty table is left alone, so the flag is safe to pass
// on every start.
func (app *application) seedVocabulary(ctx context.Context) error {
	count, err := app.vocabularyStore.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count vocabulary entries: %w", err)
	}

	if count > 0 {
		app.logger.Info("Vocabulary table already populated, skipping seed",
			"entries", count)
		return nil
	}

	for _, seed := range starterVocabulary {
		enExample := seed.enExample
		jaExample := seed.jaExample

		entry, err := domain.NewVocabulary(seed.enWord, seed.jaWord, &enExample, &jaExample)
		if err != nil {
			return fmt.Errorf("invalid seed entry %q: %w", seed.enWord, err)
		}

		if err := app.vocabularyStore.Create(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed vocabulary entry %q: %w", seed.enWord, err)
		}
	}

	app.logger.Info("Seeded starter vocabulary entries",
		"entries", len(starterVocabulary))
	return nil
}
