package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a registered test-taker. Identity is owned here only to the
// extent the engine needs a stable user_id to hang results off of.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			NotEmpty().
			Unique().
			Comment("Login name, unique across the app"),
		field.String("password").
			NotEmpty().
			Sensitive().
			Comment("bcrypt hash of the password"),
		field.String("email").
			Default("").
			Comment("Contact email, informational only"),
		field.Time("created_at").
			Immutable().
			Comment("UTC registration time"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}
