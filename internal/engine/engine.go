// Package engine drives one test session from start to finalization.
//
// A session moves forward only: created with a zero score, answered one
// question at a time, finalized once the last answer lands. The engine
// derives the running position and score from the persisted attempts,
// so the session row itself is written exactly twice: at creation and
// at finalization. Callers serialize access per session; distinct
// sessions may run concurrently.
package engine

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/quotienthq/quotient/internal/store"
)

// OptionLabels are the four valid answer labels in display order.
var OptionLabels = []string{"A", "B", "C", "D"}

// Option pairs an answer label with its display text.
type Option struct {
	Label string
	Text  string
}

// Question is the engine's view of a catalog question. The correct
// option is deliberately absent: callers presenting a live session
// never need it, and the results path gets it from SessionDetail.
type Question struct {
	Position int // 1-based ordinal within the session
	Total    int
	Text     string
	Options  []Option
}

// Progress reports the state of a session after an answer.
type Progress struct {
	Score     int // running correct count including this answer
	Position  int // position just answered
	Total     int
	Completed bool
}

// Engine sequences questions, records attempts and finalizes sessions.
type Engine struct {
	users     store.UserRepo
	questions store.QuestionRepo
	results   store.ResultRepo
	attempts  store.AttemptRepo
}

// New creates an Engine over the given store.
func New(s *store.Store) *Engine {
	return &Engine{
		users:     s.Users(),
		questions: s.Questions(),
		results:   s.Results(),
		attempts:  s.Attempts(),
	}
}

// StartSession creates a new session for the user and returns its
// opaque reference. totalQuestions <= 0 means the full catalog; any
// larger request is capped at the catalog size.
func (e *Engine) StartSession(ctx context.Context, userID, totalQuestions int) (string, error) {
	u, err := e.users.ByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", &NotFoundError{Kind: "user", Ref: strconv.Itoa(userID)}
	}

	available, err := e.questions.Count(ctx)
	if err != nil {
		return "", err
	}
	if available == 0 {
		return "", fmt.Errorf("question catalog is empty: seed it first")
	}
	if totalQuestions <= 0 || totalQuestions > available {
		totalQuestions = available
	}

	ref := uuid.NewString()
	if _, err := e.results.Create(ctx, ref, userID, totalQuestions); err != nil {
		return "", err
	}
	return ref, nil
}

// CurrentQuestion returns the question at the session's current
// position. Pure read: no state is advanced. Returns a
// SessionCompletedError once every question has been answered.
func (e *Engine) CurrentQuestion(ctx context.Context, sessionRef string) (*Question, error) {
	res, err := e.session(ctx, sessionRef)
	if err != nil {
		return nil, err
	}
	if res.Completed {
		return nil, &SessionCompletedError{Ref: sessionRef}
	}

	answered, err := e.attempts.CountByResult(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	position := answered + 1
	if position > res.TotalQuestions {
		return nil, &SessionCompletedError{Ref: sessionRef}
	}

	q, err := e.questions.ByPosition(ctx, position)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, &NotFoundError{Kind: "question", Ref: strconv.Itoa(position)}
	}

	return &Question{
		Position: position,
		Total:    res.TotalQuestions,
		Text:     q.Text,
		Options: []Option{
			{Label: "A", Text: q.OptionA},
			{Label: "B", Text: q.OptionB},
			{Label: "C", Text: q.OptionC},
			{Label: "D", Text: q.OptionD},
		},
	}, nil
}

// SubmitAnswer records one answer against the session's current
// question and advances the position. The attempt insert and, on the
// last question, the finalization happen in a single transaction.
//
// The engine does not guard against the caller submitting twice for
// the same position; drive it strictly once per CurrentQuestion.
func (e *Engine) SubmitAnswer(ctx context.Context, sessionRef, option string) (Progress, error) {
	label := strings.ToUpper(strings.TrimSpace(option))
	if !validLabel(label) {
		return Progress{}, &InvalidOptionError{Option: option}
	}

	res, err := e.session(ctx, sessionRef)
	if err != nil {
		return Progress{}, err
	}
	if res.Completed {
		return Progress{}, &SessionCompletedError{Ref: sessionRef}
	}

	answered, err := e.attempts.CountByResult(ctx, res.ID)
	if err != nil {
		return Progress{}, err
	}
	position := answered + 1
	if position > res.TotalQuestions {
		// All attempts exist but the completed flag never landed.
		// Repair by finalizing, then reject as usual.
		if _, err := e.finalize(ctx, res); err != nil {
			return Progress{}, err
		}
		return Progress{}, &SessionCompletedError{Ref: sessionRef}
	}

	q, err := e.questions.ByPosition(ctx, position)
	if err != nil {
		return Progress{}, err
	}
	if q == nil {
		return Progress{}, &NotFoundError{Kind: "question", Ref: strconv.Itoa(position)}
	}

	isCorrect := strings.EqualFold(label, q.CorrectLabel)

	score, err := e.attempts.CorrectCount(ctx, res.ID)
	if err != nil {
		return Progress{}, err
	}
	if isCorrect {
		score++
	}

	params := store.RecordParams{
		ResultID:    res.ID,
		QuestionID:  q.ID,
		ChosenLabel: label,
		IsCorrect:   isCorrect,
		Position:    position,
	}
	completed := position == res.TotalQuestions
	if completed {
		final := score
		params.FinalScore = &final
	}
	if err := e.attempts.Record(ctx, params); err != nil {
		return Progress{}, err
	}

	return Progress{
		Score:     score,
		Position:  position,
		Total:     res.TotalQuestions,
		Completed: completed,
	}, nil
}

// finalize writes the final score and completion flag. Calling it on
// an already-completed session is a no-op returning the stored score.
func (e *Engine) finalize(ctx context.Context, res *store.Result) (int, error) {
	if res.Completed {
		return res.Score, nil
	}
	score, err := e.attempts.CorrectCount(ctx, res.ID)
	if err != nil {
		return 0, err
	}
	if err := e.results.Finalize(ctx, res.ID, score); err != nil {
		return 0, err
	}
	return score, nil
}

func (e *Engine) session(ctx context.Context, sessionRef string) (*store.Result, error) {
	res, err := e.results.ByUUID(ctx, sessionRef)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, &NotFoundError{Kind: "session", Ref: sessionRef}
	}
	return res, nil
}

func validLabel(label string) bool {
	for _, l := range OptionLabels {
		if label == l {
			return true
		}
	}
	return false
}
