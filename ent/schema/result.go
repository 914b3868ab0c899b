package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Result is one test session. The engine writes a row exactly twice:
// zero-initialized at start, and once more at finalization when the
// final score is recorded and completed flips to true. The running
// score in between is derived from the attempts table, never stored.
type Result struct {
	ent.Schema
}

func (Result) Fields() []ent.Field {
	return []ent.Field{
		field.String("uuid").
			NotEmpty().
			Unique().
			Immutable().
			Comment("Opaque session reference handed to callers"),
		field.Int("user_id").
			Positive().
			Immutable().
			Comment("Owning user"),
		field.Int("score").
			Default(0).
			Min(0).
			Comment("Final correct count, 0 until finalization"),
		field.Int("total_questions").
			Positive().
			Immutable().
			Comment("Number of questions in this session"),
		field.Bool("completed").
			Default(false).
			Comment("True once the final score has been written"),
		field.Time("date_taken").
			Default(time.Now).
			Immutable().
			Comment("UTC session start time"),
	}
}

func (Result) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("uuid"),
		index.Fields("user_id"),
		index.Fields("date_taken"),
	}
}
