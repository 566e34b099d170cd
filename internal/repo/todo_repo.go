package repo

import (
	"context"
	"time"

	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"
)

type TodoRepo interface {
	Insert(ctx context.Context, t dom.Todo) (dom.Todo, error)
	ListByUser(ctx context.Context, userID string) ([]dom.Todo, error)
	UpdateStatus(ctx context.Context, userID, todoID string, isCompleted bool) (dom.Todo, error)
}

type PGTodoRepo struct {
	db DB
}

func NewPGTodoRepo(db DB) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func (r *PGTodoRepo) Insert(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (todo_id, user_id, title, description, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING todo_id, user_id, title, description, is_completed, created_at, updated_at`
	var out dom.Todo
	err := r.db.QueryRow(ctx, query,
		t.TodoID, t.UserID, t.Title, t.Description, t.IsCompleted, t.CreatedAt, t.UpdatedAt,
	).Scan(
		&out.TodoID, &out.UserID, &out.Title, &out.Description, &out.IsCompleted,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTodoRepo) ListByUser(ctx context.Context, userID string) ([]dom.Todo, error) {
	// todo_id is a ULID, so the secondary sort keeps the order total when
	// created_at collides.
	query := `
		SELECT todo_id, user_id, title, description, is_completed, created_at, updated_at
		FROM todos WHERE user_id = $1
		ORDER BY created_at DESC, todo_id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Todo
	for rows.Next() {
		var t dom.Todo
		if err := rows.Scan(&t.TodoID, &t.UserID, &t.Title, &t.Description, &t.IsCompleted,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// UpdateStatus sets is_completed and refreshes updated_at on the row matching
// both todo_id and user_id, then reads the row back with the same pair.
// updated_at comes from the same application clock Insert uses, so it never
// lands before created_at. A missing row and a row owned by someone else are
// indistinguishable: both surface as pgx.ErrNoRows from the read-back.
func (r *PGTodoRepo) UpdateStatus(ctx context.Context, userID, todoID string, isCompleted bool) (dom.Todo, error) {
	_, err := r.db.Exec(ctx,
		`UPDATE todos SET is_completed = $3, updated_at = $4 WHERE todo_id = $1 AND user_id = $2`,
		todoID, userID, isCompleted, time.Now().UTC(),
	)
	if err != nil {
		return dom.Todo{}, err
	}
	query := `
		SELECT todo_id, user_id, title, description, is_completed, created_at, updated_at
		FROM todos WHERE todo_id = $1 AND user_id = $2`
	var t dom.Todo
	err = r.db.QueryRow(ctx, query, todoID, userID).Scan(
		&t.TodoID, &t.UserID, &t.Title, &t.Description, &t.IsCompleted,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
