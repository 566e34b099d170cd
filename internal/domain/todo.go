package domain

import "time"

// Todo is the domain entity for a single task.
// Не зависит от Gin, Postgres, Redis.
//
// TodoID and UserID never change after creation; every read and write
// goes through operations scoped by the owning UserID.
type Todo struct {
	TodoID      string
	UserID      string
	Title       string
	Description *string // nil = absent, distinct from empty string
	IsCompleted bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
