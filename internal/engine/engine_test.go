package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/quotienthq/quotient/internal/store"
)

// newTestEngine opens an in-memory store seeded with n questions whose
// correct answer is always B, creates one user, and returns its ID.
func newTestEngine(t *testing.T, n int) (*Engine, *store.Store, int) {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	qs := make([]store.Question, 0, n)
	for i := 1; i <= n; i++ {
		qs = append(qs, store.Question{
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

	u, err := s.Users().Create(context.Background(), "ada", "not-a-real-hash", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	return New(s), s, u.ID
}

func TestStartSessionUnknownUser(t *testing.T) {
	eng, _, _ := newTestEngine(t, 3)

	_, err := eng.StartSession(context.Background(), 9999, 0)
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestStartSessionEmptyCatalog(t *testing.T) {
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	u, err := s.Users().Create(context.Background(), "ada", "not-a-real-hash", "")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, err = New(s).StartSession(context.Background(), u.ID, 0)
	if err == nil {
		t.Fatal("expected error for empty catalog")
	}
}

func TestStartSessionCapsAtCatalogSize(t *testing.T) {
	eng, _, userID := newTestEngine(t, 3)
	ctx := context.Background()

	ref, err := eng.StartSession(ctx, userID, 100)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	q, err := eng.CurrentQuestion(ctx, ref)
	if err != nil {
		t.Fatalf("current question: %v", err)
	}
	if q.Total != 3 {
		t.Errorf("total = %d, want 3 (capped at catalog size)", q.Total)
	}
}

func TestCurrentQuestionIsPureRead(t *testing.T) {
	eng, _, userID := newTestEngine(t, 3)
	ctx := context.Background()

	ref, err := eng.StartSession(ctx, userID, 0)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	for i := 0; i < 3; i++ {
		q, err := eng.CurrentQuestion(ctx, ref)
		if err != nil {
			t.Fatalf("current question (read %d): %v", i, err)
		}
		if q.Position != 1 {
			t.Fatalf("read %d: position = %d, want 1", i, q.Position)
		}
	}
}

func TestSubmitAnswerInvalidOption(t *testing.T) {
	eng, _, userID := newTestEngine(t, 3)
	ctx := context.Background()

	ref, err := eng.StartSession(ctx, userID, 0)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	for _, opt := range []string{"E", "", "AB", "1"} {
		_, err := eng.SubmitAnswer(ctx, ref, opt)
		if !IsInvalidOption(err) {
			t.Errorf("submit %q: err = %v, want InvalidOptionError", opt, err)
		}
	}

	// Invalid submits record nothing.
	q, err := eng.CurrentQuestion(ctx, ref)
	if err != nil {
		t.Fatalf("current question: %v", err)
	}
	if q.Position != 1 {
		t.Errorf("position after invalid submits = %d, want 1", q.Position)
	}
}

func TestSubmitAnswerCaseInsensitive(t *testing.T) {
	eng, _, userID := newTestEngine(t, 1)
	ctx := context.Background()

	ref, err := eng.StartSession(ctx, userID, 0)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	progress, err := eng.SubmitAnswer(ctx, ref, " b ")
	if err != nil {
		t.Fatalf("submit lowercase: %v", err)
	}
	if progress.Score != 1 {
		t.Errorf("score = %d, want 1 (lowercase match counts)", progress.Score)
	}
}

func TestFullSessionScoring(t *testing.T) {
	eng, _, userID := newTestEngine(t, 3)
	ctx := context.Background()

	ref, err := eng.StartSession(ctx, userID, 0)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	answers := []struct {
		option        string
		wantScore     int
		wantCompleted bool
	}{
		{"B", 1, false},
		{"A", 1, false},
		{"B", 2, true},
	}
	for i, a := range answers {
		q, err := eng.CurrentQuestion(ctx, ref)
		if err != nil {
			t.Fatalf("current question %d: %v", i+1, err)
		}
		if q.Position != i+1 {
			t.Fatalf("position = %d, want %d", q.Position, i+1)
		}

		progress, err := eng.SubmitAnswer(ctx, ref, a.option)
		if err != nil {
			t.Fatalf("submit %d: %v", i+1, err)
		}
		if progress.Score != a.wantScore {
			t.Errorf("after answer %d: score = %d, want %d", i+1, progress.Score, a.wantScore)
		}
		if progress.Completed != a.wantCompleted {
			t.Errorf("after answer %d: completed = %v, want %v", i+1, progress.Completed, a.wantCompleted)
		}
	}

	detail, err := eng.SessionDetail(ctx, ref)
	if err != nil {
		t.Fatalf("session detail: %v", err)
	}
	if detail.Score != 2 || !detail.Completed {
		t.Errorf("detail = score %d completed %v, want 2/true", detail.Score, detail.Completed)
	}
	if len(detail.Attempts) != 3 {
		t.Fatalf("attempts = %d, want 3", len(detail.Attempts))
	}

	// Stored score must equal the number of correct attempts.
	correct := 0
	for _, a := range detail.Attempts {
		if a.IsCorrect {
			correct++
		}
	}
	if correct != detail.Score {
		t.Errorf("correct attempts = %d, stored score = %d", correct, detail.Score)
	}
	if detail.Attempts[1].IsCorrect {
		t.Error("attempt 2 chose A, expected incorrect")
	}
}

func TestSubmitAfterCompletedRejected(t *testing.T) {
	eng, s, userID := newTestEngine(t, 1)
	ctx := context.Background()

	ref, err := eng.StartSession(ctx, userID, 0)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if _, err := eng.SubmitAnswer(ctx, ref, "B"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	_, err = eng.SubmitAnswer(ctx, ref, "A")
	if !IsSessionCompleted(err) {
		t.Fatalf("err = %v, want SessionCompletedError", err)
	}
	if _, err := eng.CurrentQuestion(ctx, ref); !IsSessionCompleted(err) {
		t.Fatalf("current question err = %v, want SessionCompletedError", err)
	}

	// The rejected submit must not have recorded an attempt.
	res, err := s.Results().ByUUID(ctx, ref)
	if err != nil {
		t.Fatalf("by uuid: %v", err)
	}
	count, err := s.Attempts().CountByResult(ctx, res.ID)
	if err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if count != 1 {
		t.Errorf("attempt count = %d, want 1", count)
	}
	if res.Score != 1 {
		t.Errorf("score = %d, want 1 (unchanged)", res.Score)
	}
}

func TestSessionNotFound(t *testing.T) {
	eng, _, _ := newTestEngine(t, 1)
	ctx := context.Background()

	if _, err := eng.CurrentQuestion(ctx, "no-such-ref"); !IsNotFound(err) {
		t.Errorf("current question err = %v, want NotFoundError", err)
	}
	if _, err := eng.SubmitAnswer(ctx, "no-such-ref", "A"); !IsNotFound(err) {
		t.Errorf("submit err = %v, want NotFoundError", err)
	}
	if _, err := eng.SessionDetail(ctx, "no-such-ref"); !IsNotFound(err) {
		t.Errorf("detail err = %v, want NotFoundError", err)
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	eng, _, userID := newTestEngine(t, 1)
	ctx := context.Background()

	// One completed, one abandoned.
	ref1, err := eng.StartSession(ctx, userID, 0)
	if err != nil {
		t.Fatalf("start session 1: %v", err)
	}
	if _, err := eng.SubmitAnswer(ctx, ref1, "B"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	ref2, err := eng.StartSession(ctx, userID, 0)
	if err != nil {
		t.Fatalf("start session 2: %v", err)
	}

	sessions, err := eng.ListSessions(ctx, userID)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("session count = %d, want 2", len(sessions))
	}
	if sessions[0].Ref != ref2 {
		t.Errorf("first session = %q, want newest %q", sessions[0].Ref, ref2)
	}
	if sessions[0].Completed {
		t.Error("abandoned session should not be completed")
	}
	if !sessions[1].Completed {
		t.Error("finished session should be completed")
	}
	if sessions[1].Percentage != 100 {
		t.Errorf("percentage = %.1f, want 100", sessions[1].Percentage)
	}
}

func TestListSessionsUnknownUser(t *testing.T) {
	eng, _, _ := newTestEngine(t, 1)

	_, err := eng.ListSessions(context.Background(), 9999)
	if !IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}
