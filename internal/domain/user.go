package domain

import "time"

// User is the domain entity for an authenticated principal. Its ID is the
// subject id issued by the external identity provider; the record exists to
// anchor the todos foreign key and seed data.
type User struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
}
