// Package catalog loads and seeds the question bank. Catalogs are JSON
// files validated against a schema before any insert; a built-in
// catalog of 20 questions is embedded for first runs.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/quotienthq/quotient/internal/store"
)

//go:embed questions.json
var defaultCatalog []byte

// Entry is one question as it appears in a catalog file.
type Entry struct {
	Text         string `json:"question_text"`
	OptionA      string `json:"option_a"`
	OptionB      string `json:"option_b"`
	OptionC      string `json:"option_c"`
	OptionD      string `json:"option_d"`
	CorrectLabel string `json:"correct_option"`
}

// Parse validates raw catalog JSON and decodes it.
func Parse(raw []byte) ([]Entry, error) {
	if err := validate(raw); err != nil {
		return nil, err
	}
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return entries, nil
}

// ParseFile reads and parses a catalog file from disk.
func ParseFile(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(raw)
}

// Default parses the embedded catalog.
func Default() ([]Entry, error) {
	return Parse(defaultCatalog)
}

// Seed loads entries into the question repo. When the catalog already
// has rows it is left untouched unless force is set, in which case it
// is replaced wholesale. Returns the number of questions inserted
// (0 when skipped).
func Seed(ctx context.Context, questions store.QuestionRepo, entries []Entry, force bool) (int, error) {
	existing, err := questions.Count(ctx)
	if err != nil {
		return 0, err
	}
	if existing > 0 && !force {
		return 0, nil
	}

	qs := make([]store.Question, 0, len(entries))
	for _, e := range entries {
		qs = append(qs, store.Question{
			Text:         e.Text,
			OptionA:      e.OptionA,
			OptionB:      e.OptionB,
			OptionC:      e.OptionC,
			OptionD:      e.OptionD,
			CorrectLabel: e.CorrectLabel,
		})
	}
	if err := questions.ReplaceAll(ctx, qs); err != nil {
		return 0, err
	}
	return len(qs), nil
}
