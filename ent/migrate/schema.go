// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptsColumns holds the columns for the "attempts" table.
	AttemptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "result_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
		{Name: "chosen_option", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "position", Type: field.TypeInt},
	}
	// AttemptsTable holds the schema information for the "attempts" table.
	AttemptsTable = &schema.Table{
		Name:       "attempts",
		Columns:    AttemptsColumns,
		PrimaryKey: []*schema.Column{AttemptsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attempt_result_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1]},
			},
			{
				Name:    "attempt_result_id_position",
				Unique:  false,
				Columns: []*schema.Column{AttemptsColumns[1], AttemptsColumns[5]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_text", Type: field.TypeString},
		{Name: "option_a", Type: field.TypeString},
		{Name: "option_b", Type: field.TypeString},
		{Name: "option_c", Type: field.TypeString},
		{Name: "option_d", Type: field.TypeString},
		{Name: "correct_option", Type: field.TypeString},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
	}
	// ResultsColumns holds the columns for the "results" table.
	ResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uuid", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt, Default: 0},
		{Name: "total_questions", Type: field.TypeInt},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "date_taken", Type: field.TypeTime},
	}
	// ResultsTable holds the schema information for the "results" table.
	ResultsTable = &schema.Table{
		Name:       "results",
		Columns:    ResultsColumns,
		PrimaryKey: []*schema.Column{ResultsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "result_uuid",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[1]},
			},
			{
				Name:    "result_user_id",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[2]},
			},
			{
				Name:    "result_date_taken",
				Unique:  false,
				Columns: []*schema.Column{ResultsColumns[6]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "password", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptsTable,
		QuestionsTable,
		ResultsTable,
		UsersTable,
	}
)

func init() {
}
