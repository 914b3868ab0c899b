package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedQuestions(t *testing.T, s *Store, n int) []Question {
	t.Helper()
	qs := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, Question{
			Text:         fmt.Sprintf("question %d", i),
			OptionA:      "alpha",
			OptionB:      "bravo",
			OptionC:      "charlie",
			OptionD:      "delta",
			CorrectLabel: "B",
		})
	}
	if err := s.Questions().ReplaceAll(context.Background(), qs); err != nil {
		t.Fatalf("seed questions: %v", err)
	}
	return qs
}

func createTestUser(t *testing.T, s *Store, username string) *User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), username, "not-a-real-hash", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"users", "questions", "results", "attempts"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	created := createTestUser(t, s, "ada")

	byName, err := s.Users().ByUsername(ctx, "ada")
	if err != nil {
		t.Fatalf("by username: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Fatalf("by username = %+v, want id %d", byName, created.ID)
	}

	byID, err := s.Users().ByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if byID == nil || byID.Username != "ada" {
		t.Fatalf("by id = %+v, want username ada", byID)
	}

	missing, err := s.Users().ByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("by username (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil user for unknown username")
	}
}

func TestQuestionCatalogOrderAndLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedQuestions(t, s, 3)

	count, err := s.Questions().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Fatalf("count = %d, want 3", count)
	}

	for pos := 1; pos <= 3; pos++ {
		q, err := s.Questions().ByPosition(ctx, pos)
		if err != nil {
			t.Fatalf("by position %d: %v", pos, err)
		}
		if q == nil {
			t.Fatalf("position %d: expected question", pos)
		}
		want := fmt.Sprintf("question %d", pos)
		if q.Text != want {
			t.Errorf("position %d text = %q, want %q", pos, q.Text, want)
		}
	}

	q, err := s.Questions().ByPosition(ctx, 4)
	if err != nil {
		t.Fatalf("by position past end: %v", err)
	}
	if q != nil {
		t.Error("expected nil question past catalog end")
	}
}

func TestQuestionReplaceAllSwapsCatalog(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedQuestions(t, s, 5)

	replacement := []Question{
		{Text: "only one", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectLabel: "A"},
	}
	if err := s.Questions().ReplaceAll(ctx, replacement); err != nil {
		t.Fatalf("replace all: %v", err)
	}

	count, err := s.Questions().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count after replace = %d, want 1", count)
	}
}

func TestResultCreateAndFinalize(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := createTestUser(t, s, "ada")

	res, err := s.Results().Create(ctx, "ref-1", u.ID, 10)
	if err != nil {
		t.Fatalf("create result: %v", err)
	}
	if res.Score != 0 || res.Completed {
		t.Fatalf("new result = score %d completed %v, want 0/false", res.Score, res.Completed)
	}
	if res.DateTaken.IsZero() {
		t.Error("expected date_taken to be set on create")
	}

	if err := s.Results().Finalize(ctx, res.ID, 7); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	got, err := s.Results().ByUUID(ctx, "ref-1")
	if err != nil {
		t.Fatalf("by uuid: %v", err)
	}
	if got == nil {
		t.Fatal("expected result by uuid")
	}
	if got.Score != 7 || !got.Completed {
		t.Errorf("finalized result = score %d completed %v, want 7/true", got.Score, got.Completed)
	}

	missing, err := s.Results().ByUUID(ctx, "no-such-ref")
	if err != nil {
		t.Fatalf("by uuid (missing): %v", err)
	}
	if missing != nil {
		t.Error("expected nil result for unknown uuid")
	}
}

func TestResultListByUserNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := createTestUser(t, s, "ada")

	for i := 1; i <= 3; i++ {
		if _, err := s.Results().Create(ctx, fmt.Sprintf("ref-%d", i), u.ID, 5); err != nil {
			t.Fatalf("create result %d: %v", i, err)
		}
	}

	list, err := s.Results().ListByUser(ctx, u.ID)
	if err != nil {
		t.Fatalf("list by user: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("list length = %d, want 3", len(list))
	}
	// Same-timestamp rows tie-break by ID descending, so the newest
	// insert comes first.
	if list[0].UUID != "ref-3" {
		t.Errorf("first result = %q, want ref-3", list[0].UUID)
	}
}

func TestAttemptRecordAndCounts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := createTestUser(t, s, "ada")
	seedQuestions(t, s, 3)

	res, err := s.Results().Create(ctx, "ref-1", u.ID, 3)
	if err != nil {
		t.Fatalf("create result: %v", err)
	}

	q1, _ := s.Questions().ByPosition(ctx, 1)
	q2, _ := s.Questions().ByPosition(ctx, 2)

	if err := s.Attempts().Record(ctx, RecordParams{
		ResultID: res.ID, QuestionID: q1.ID, ChosenLabel: "B", IsCorrect: true, Position: 1,
	}); err != nil {
		t.Fatalf("record 1: %v", err)
	}
	if err := s.Attempts().Record(ctx, RecordParams{
		ResultID: res.ID, QuestionID: q2.ID, ChosenLabel: "A", IsCorrect: false, Position: 2,
	}); err != nil {
		t.Fatalf("record 2: %v", err)
	}

	count, err := s.Attempts().CountByResult(ctx, res.ID)
	if err != nil {
		t.Fatalf("count by result: %v", err)
	}
	if count != 2 {
		t.Errorf("attempt count = %d, want 2", count)
	}

	correct, err := s.Attempts().CorrectCount(ctx, res.ID)
	if err != nil {
		t.Fatalf("correct count: %v", err)
	}
	if correct != 1 {
		t.Errorf("correct count = %d, want 1", correct)
	}
}

func TestAttemptRecordWithFinalScoreFinalizes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := createTestUser(t, s, "ada")
	seedQuestions(t, s, 1)

	res, err := s.Results().Create(ctx, "ref-1", u.ID, 1)
	if err != nil {
		t.Fatalf("create result: %v", err)
	}
	q, _ := s.Questions().ByPosition(ctx, 1)

	final := 1
	err = s.Attempts().Record(ctx, RecordParams{
		ResultID:    res.ID,
		QuestionID:  q.ID,
		ChosenLabel: "B",
		IsCorrect:   true,
		Position:    1,
		FinalScore:  &final,
	})
	if err != nil {
		t.Fatalf("record with final score: %v", err)
	}

	got, err := s.Results().ByUUID(ctx, "ref-1")
	if err != nil {
		t.Fatalf("by uuid: %v", err)
	}
	if !got.Completed || got.Score != 1 {
		t.Errorf("result = score %d completed %v, want 1/true", got.Score, got.Completed)
	}
}

func TestAttemptListByResultJoinsQuestions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := createTestUser(t, s, "ada")
	seedQuestions(t, s, 2)

	res, err := s.Results().Create(ctx, "ref-1", u.ID, 2)
	if err != nil {
		t.Fatalf("create result: %v", err)
	}
	q1, _ := s.Questions().ByPosition(ctx, 1)
	q2, _ := s.Questions().ByPosition(ctx, 2)

	// Insert out of order; ListByResult must sort by position.
	if err := s.Attempts().Record(ctx, RecordParams{
		ResultID: res.ID, QuestionID: q2.ID, ChosenLabel: "C", IsCorrect: false, Position: 2,
	}); err != nil {
		t.Fatalf("record 2: %v", err)
	}
	if err := s.Attempts().Record(ctx, RecordParams{
		ResultID: res.ID, QuestionID: q1.ID, ChosenLabel: "B", IsCorrect: true, Position: 1,
	}); err != nil {
		t.Fatalf("record 1: %v", err)
	}

	details, err := s.Attempts().ListByResult(ctx, res.ID)
	if err != nil {
		t.Fatalf("list by result: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("detail count = %d, want 2", len(details))
	}
	if details[0].Position != 1 || details[1].Position != 2 {
		t.Errorf("positions = %d,%d, want 1,2", details[0].Position, details[1].Position)
	}
	first := details[0]
	if first.QuestionText != "question 1" {
		t.Errorf("question text = %q, want %q", first.QuestionText, "question 1")
	}
	if first.CorrectLabel != "B" || first.CorrectText != "bravo" {
		t.Errorf("correct = %s/%q, want B/bravo", first.CorrectLabel, first.CorrectText)
	}
	if first.ChosenText != "bravo" {
		t.Errorf("chosen text = %q, want bravo", first.ChosenText)
	}
}
