package store

import (
	"context"
	"fmt"

	"github.com/quotienthq/quotient/ent"
	"github.com/quotienthq/quotient/ent/question"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (r *questionRepo) ByPosition(ctx context.Context, position int) (*Question, error) {
	if position < 1 {
		return nil, nil
	}
	q, err := r.client.Question.Query().
		Order(ent.Asc(question.FieldID)).
		Offset(position - 1).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question at position %d: %w", position, err)
	}
	return entQuestionToQuestion(q), nil
}

func (r *questionRepo) ByID(ctx context.Context, id int) (*Question, error) {
	q, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question by id: %w", err)
	}
	return entQuestionToQuestion(q), nil
}

func (r *questionRepo) ReplaceAll(ctx context.Context, qs []Question) error {
	return withTx(ctx, r.client, func(tx *ent.Tx) error {
		if _, err := tx.Question.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("clear catalog: %w", err)
		}

		builders := make([]*ent.QuestionCreate, 0, len(qs))
		for _, q := range qs {
			builders = append(builders, tx.Question.Create().
				SetQuestionText(q.Text).
				SetOptionA(q.OptionA).
				SetOptionB(q.OptionB).
				SetOptionC(q.OptionC).
				SetOptionD(q.OptionD).
				SetCorrectOption(q.CorrectLabel))
		}
		if _, err := tx.Question.CreateBulk(builders...).Save(ctx); err != nil {
			return fmt.Errorf("insert catalog: %w", err)
		}
		return nil
	})
}

func entQuestionToQuestion(q *ent.Question) *Question {
	return &Question{
		ID:           q.ID,
		Text:         q.QuestionText,
		OptionA:      q.OptionA,
		OptionB:      q.OptionB,
		OptionC:      q.OptionC,
		OptionD:      q.OptionD,
		CorrectLabel: q.CorrectOption,
	}
}
