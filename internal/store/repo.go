package store

import (
	"context"
	"time"
)

// User is a registered test-taker.
type User struct {
	ID        int
	Username  string
	Password  string // bcrypt hash
	Email     string
	CreatedAt time.Time
}

// Question is one catalog item. Catalog order is ascending ID; the
// engine addresses questions by 1-based position within that order.
type Question struct {
	ID           int
	Text         string
	OptionA      string
	OptionB      string
	OptionC      string
	OptionD      string
	CorrectLabel string // A, B, C or D
}

// Result is one test session row.
type Result struct {
	ID             int
	UUID           string
	UserID         int
	Score          int
	TotalQuestions int
	Completed      bool
	DateTaken      time.Time
}

// Attempt is one recorded answer within a session.
type Attempt struct {
	ID          int
	ResultID    int
	QuestionID  int
	ChosenLabel string
	IsCorrect   bool
	Position    int
}

// AttemptDetail is an Attempt joined with its question's prompt and
// correct option text for display.
type AttemptDetail struct {
	Attempt
	QuestionText string
	CorrectLabel string
	CorrectText  string
	ChosenText   string
}

// UserRepo manages user rows. Repos return (nil, nil) for lookups
// that match nothing; callers decide whether that is an error.
type UserRepo interface {
	Create(ctx context.Context, username, passwordHash, email string) (*User, error)
	ByUsername(ctx context.Context, username string) (*User, error)
	ByID(ctx context.Context, id int) (*User, error)
}

// QuestionRepo provides read access to the question catalog plus
// bulk seeding.
type QuestionRepo interface {
	// Count returns the number of questions in the catalog.
	Count(ctx context.Context) (int, error)

	// ByPosition returns the question at the given 1-based position
	// in catalog order, or nil if position is out of range.
	ByPosition(ctx context.Context, position int) (*Question, error)

	// ByID returns the question with the given ID, or nil.
	ByID(ctx context.Context, id int) (*Question, error)

	// ReplaceAll deletes the existing catalog and inserts qs in order,
	// atomically.
	ReplaceAll(ctx context.Context, qs []Question) error
}

// ResultRepo manages session rows.
type ResultRepo interface {
	// Create inserts a zero-score, incomplete session row.
	Create(ctx context.Context, uuid string, userID, totalQuestions int) (*Result, error)

	// ByUUID returns the session with the given reference, or nil.
	ByUUID(ctx context.Context, uuid string) (*Result, error)

	// ListByUser returns the user's sessions, most recent first.
	ListByUser(ctx context.Context, userID int) ([]Result, error)

	// Finalize writes the final score and flips completed. Safe to
	// call on an already-completed row; the values are simply
	// rewritten with what Finalize is given.
	Finalize(ctx context.Context, resultID, score int) error
}

// RecordParams describes one attempt write. When FinalScore is non-nil
// the owning result is finalized in the same transaction.
type RecordParams struct {
	ResultID    int
	QuestionID  int
	ChosenLabel string
	IsCorrect   bool
	Position    int
	FinalScore  *int
}

// AttemptRepo manages answer rows. Record is the single atomic write
// unit for the submit path: the attempt insert and (on the last
// question) the result finalization commit or roll back together.
type AttemptRepo interface {
	Record(ctx context.Context, params RecordParams) error

	// CountByResult returns how many attempts the session has.
	CountByResult(ctx context.Context, resultID int) (int, error)

	// CorrectCount returns how many of the session's attempts were correct.
	CorrectCount(ctx context.Context, resultID int) (int, error)

	// ListByResult returns the session's attempts joined with question
	// text, ordered by position ascending. The full joined set is
	// returned or an error, never a partial view.
	ListByResult(ctx context.Context, resultID int) ([]AttemptDetail, error)
}

// OptionText returns the option text for a label, or "" for an
// unknown label.
func (q *Question) OptionText(label string) string {
	switch label {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}
