package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quotienthq/quotient/internal/store"
)

const validCatalog = `[
  {
    "question_text": "What comes next: 2, 4, 8, 16, ...?",
    "option_a": "24",
    "option_b": "32",
    "option_c": "30",
    "option_d": "64",
    "correct_option": "B"
  }
]`

func TestParseValid(t *testing.T) {
	entries, err := Parse([]byte(validCatalog))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "B", entries[0].CorrectLabel)
	assert.Equal(t, "32", entries[0].OptionB)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{`},
		{"not an array", `{"question_text": "q"}`},
		{"empty array", `[]`},
		{"missing option", `[{"question_text": "q", "option_a": "1", "option_b": "2", "option_c": "3", "correct_option": "A"}]`},
		{"bad correct option", `[{"question_text": "q", "option_a": "1", "option_b": "2", "option_c": "3", "option_d": "4", "correct_option": "E"}]`},
		{"lowercase correct option", `[{"question_text": "q", "option_a": "1", "option_b": "2", "option_c": "3", "option_d": "4", "correct_option": "a"}]`},
		{"extra field", `[{"question_text": "q", "option_a": "1", "option_b": "2", "option_c": "3", "option_d": "4", "correct_option": "A", "hint": "32"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestDefaultCatalogParses(t *testing.T) {
	entries, err := Default()
	require.NoError(t, err)
	assert.Len(t, entries, 20)
	for _, e := range entries {
		assert.Contains(t, []string{"A", "B", "C", "D"}, e.CorrectLabel)
		assert.NotEmpty(t, e.Text)
	}
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedSkipsNonEmptyCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	entries, err := Parse([]byte(validCatalog))
	require.NoError(t, err)

	n, err := Seed(ctx, s.Questions(), entries, false)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	defaults, err := Default()
	require.NoError(t, err)
	n, err = Seed(ctx, s.Questions(), defaults, false)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "seed over a non-empty catalog must skip")

	count, err := s.Questions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSeedForceReplaces(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	entries, err := Parse([]byte(validCatalog))
	require.NoError(t, err)
	_, err = Seed(ctx, s.Questions(), entries, false)
	require.NoError(t, err)

	defaults, err := Default()
	require.NoError(t, err)
	n, err := Seed(ctx, s.Questions(), defaults, true)
	require.NoError(t, err)
	assert.Equal(t, len(defaults), n)

	count, err := s.Questions().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(defaults), count)
}
