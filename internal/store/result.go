package store

import (
	"context"
	"fmt"
	"time"

	"github.com/quotienthq/quotient/ent"
	"github.com/quotienthq/quotient/ent/result"
)

// resultRepo implements ResultRepo using the ent client.
type resultRepo struct {
	client *ent.Client
}

func (r *resultRepo) Create(ctx context.Context, uuid string, userID, totalQuestions int) (*Result, error) {
	res, err := r.client.Result.Create().
		SetUUID(uuid).
		SetUserID(userID).
		SetTotalQuestions(totalQuestions).
		SetDateTaken(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create result: %w", err)
	}
	return entResultToResult(res), nil
}

func (r *resultRepo) ByUUID(ctx context.Context, uuid string) (*Result, error) {
	res, err := r.client.Result.Query().
		Where(result.UUID(uuid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query result by uuid: %w", err)
	}
	return entResultToResult(res), nil
}

func (r *resultRepo) ListByUser(ctx context.Context, userID int) ([]Result, error) {
	rows, err := r.client.Result.Query().
		Where(result.UserID(userID)).
		Order(ent.Desc(result.FieldDateTaken), ent.Desc(result.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list results for user %d: %w", userID, err)
	}

	out := make([]Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, *entResultToResult(row))
	}
	return out, nil
}

func (r *resultRepo) Finalize(ctx context.Context, resultID, score int) error {
	err := r.client.Result.UpdateOneID(resultID).
		SetScore(score).
		SetCompleted(true).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("finalize result %d: %w", resultID, err)
	}
	return nil
}

func entResultToResult(res *ent.Result) *Result {
	return &Result{
		ID:             res.ID,
		UUID:           res.UUID,
		UserID:         res.UserID,
		Score:          res.Score,
		TotalQuestions: res.TotalQuestions,
		Completed:      res.Completed,
		DateTaken:      res.DateTaken,
	}
}
