package engine

import (
	"context"
	"strconv"
	"time"
)

// SessionSummary is one row in a user's session history.
type SessionSummary struct {
	Ref        string
	Score      int
	Total      int
	Percentage float64
	Completed  bool
	DateTaken  time.Time
}

// AttemptView is one answered question within a session detail,
// joined with the question's prompt and correct-option text.
type AttemptView struct {
	Position     int
	QuestionText string
	ChosenLabel  string
	ChosenText   string
	CorrectLabel string
	CorrectText  string
	IsCorrect    bool
}

// Detail is a full session record: the session row plus its attempts
// in ascending position order.
type Detail struct {
	Ref       string
	UserID    int
	Score     int
	Total     int
	Completed bool
	DateTaken time.Time
	Attempts  []AttemptView
}

// ListSessions returns the user's sessions ordered by creation time,
// most recent first. The slice is a snapshot; re-query for fresh data.
func (e *Engine) ListSessions(ctx context.Context, userID int) ([]SessionSummary, error) {
	u, err := e.users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, &NotFoundError{Kind: "user", Ref: strconv.Itoa(userID)}
	}

	rows, err := e.results.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]SessionSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, SessionSummary{
			Ref:        r.UUID,
			Score:      r.Score,
			Total:      r.TotalQuestions,
			Percentage: percentage(r.Score, r.TotalQuestions),
			Completed:  r.Completed,
			DateTaken:  r.DateTaken,
		})
	}
	return out, nil
}

// SessionDetail returns the session plus its ordered attempts. The
// full joined set is returned or an error, never a partial view.
func (e *Engine) SessionDetail(ctx context.Context, sessionRef string) (*Detail, error) {
	res, err := e.session(ctx, sessionRef)
	if err != nil {
		return nil, err
	}

	attempts, err := e.attempts.ListByResult(ctx, res.ID)
	if err != nil {
		return nil, err
	}

	views := make([]AttemptView, 0, len(attempts))
	for _, a := range attempts {
		views = append(views, AttemptView{
			Position:     a.Position,
			QuestionText: a.QuestionText,
			ChosenLabel:  a.ChosenLabel,
			ChosenText:   a.ChosenText,
			CorrectLabel: a.CorrectLabel,
			CorrectText:  a.CorrectText,
			IsCorrect:    a.IsCorrect,
		})
	}

	return &Detail{
		Ref:       res.UUID,
		UserID:    res.UserID,
		Score:     res.Score,
		Total:     res.TotalQuestions,
		Completed: res.Completed,
		DateTaken: res.DateTaken,
		Attempts:  views,
	}, nil
}

func percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) * 100 / float64(total)
}
