// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Attempt is the predicate function for attempt builders.
type Attempt func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Result is the predicate function for result builders.
type Result func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
