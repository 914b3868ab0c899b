package store

import (
	"context"
	"fmt"

	"github.com/quotienthq/quotient/ent"
	"github.com/quotienthq/quotient/ent/attempt"
	"github.com/quotienthq/quotient/ent/question"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
}

func (r *attemptRepo) Record(ctx context.Context, params RecordParams) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		_, err := tx.Attempt.Create().
			SetResultID(params.ResultID).
			SetQuestionID(params.QuestionID).
			SetChosenOption(params.ChosenLabel).
			SetIsCorrect(params.IsCorrect).
			SetPosition(params.Position).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save attempt: %w", err)
		}

		if params.FinalScore != nil {
			err = tx.Result.UpdateOneID(params.ResultID).
				SetScore(*params.FinalScore).
				SetCompleted(true).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("finalize result %d: %w", params.ResultID, err)
			}
		}
		return nil
	})
}

func (r *attemptRepo) CountByResult(ctx context.Context, resultID int) (int, error) {
	n, err := r.client.Attempt.Query().
		Where(attempt.ResultID(resultID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count attempts: %w", err)
	}
	return n, nil
}

func (r *attemptRepo) CorrectCount(ctx context.Context, resultID int) (int, error) {
	n, err := r.client.Attempt.Query().
		Where(attempt.ResultID(resultID), attempt.IsCorrect(true)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count correct attempts: %w", err)
	}
	return n, nil
}

func (r *attemptRepo) ListByResult(ctx context.Context, resultID int) ([]AttemptDetail, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.ResultID(resultID)).
		Order(ent.Asc(attempt.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(rows))
	seen := make(map[int]bool, len(rows))
	for _, row := range rows {
		if !seen[row.QuestionID] {
			seen[row.QuestionID] = true
			ids = append(ids, row.QuestionID)
		}
	}

	qs, err := r.client.Question.Query().
		Where(question.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load questions for attempts: %w", err)
	}
	byID := make(map[int]*ent.Question, len(qs))
	for _, q := range qs {
		byID[q.ID] = q
	}

	out := make([]AttemptDetail, 0, len(rows))
	for _, row := range rows {
		q, ok := byID[row.QuestionID]
		if !ok {
			return nil, fmt.Errorf("attempt %d references missing question %d", row.ID, row.QuestionID)
		}
		sq := entQuestionToQuestion(q)
		out = append(out, AttemptDetail{
			Attempt: Attempt{
				ID:          row.ID,
				ResultID:    row.ResultID,
				QuestionID:  row.QuestionID,
				ChosenLabel: row.ChosenOption,
				IsCorrect:   row.IsCorrect,
				Position:    row.Position,
			},
			QuestionText: sq.Text,
			CorrectLabel: sq.CorrectLabel,
			CorrectText:  sq.OptionText(sq.CorrectLabel),
			ChosenText:   sq.OptionText(row.ChosenOption),
		})
	}
	return out, nil
}
