package repo

import (
	"context"

	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Upsert(ctx context.Context, id string) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db DB
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db DB) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Upsert inserts the user if unknown; signing up twice with the same
// subject id is a no-op apart from refreshing updated_at.
func (r *PGUserRepo) Upsert(ctx context.Context, id string) (dom.User, error) {
	query := `
		INSERT INTO users (id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET updated_at = NOW()
		RETURNING id, created_at, updated_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
