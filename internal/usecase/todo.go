package usecase

import (
	"context"
	"time"

	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"
	"github.com/kosukesaigusa/poker-hand-history/internal/repo"

	"golang.org/x/sync/singleflight"
)

// ListCache holds each user's todo list between reads. A GetList miss is
// (nil, nil); a cached empty list comes back non-nil.
type ListCache interface {
	GetList(ctx context.Context, userID string) ([]dom.Todo, error)
	SetList(ctx context.Context, userID string, list []dom.Todo) error
	Invalidate(ctx context.Context, userID string) error
}

// TodoUseCase orchestrates validation and persistence for todos. Every
// operation takes the authenticated user id explicitly; nothing here reads
// ambient request state.
type TodoUseCase struct {
	repo  repo.TodoRepo
	cache ListCache
	sf    singleflight.Group
}

// NewTodoUseCase creates a TodoUseCase. If c is nil, caching is disabled.
func NewTodoUseCase(r repo.TodoRepo, c ListCache) *TodoUseCase {
	return &TodoUseCase{repo: r, cache: c}
}

// Create validates title and description (in that order, first failure wins)
// and persists a new todo with a fresh id, isCompleted=false and equal
// created/updated timestamps.
func (u *TodoUseCase) Create(ctx context.Context, userID, title string, description *string) (dom.Todo, error) {
	if err := ValidateTitle(title); err != nil {
		return dom.Todo{}, err
	}
	if err := ValidateDescription(description); err != nil {
		return dom.Todo{}, err
	}

	now := time.Now().UTC()
	t, err := u.repo.Insert(ctx, dom.Todo{
		TodoID:      dom.NewTodoID(),
		UserID:      userID,
		Title:       title,
		Description: description,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return dom.Todo{}, NewError(CreateFailed, "failed to create todo")
	}
	u.invalidateCache(ctx, userID)
	return t, nil
}

// List returns the user's todos, newest first. An empty result is a valid
// success, not an error.
func (u *TodoUseCase) List(ctx context.Context, userID string) ([]dom.Todo, error) {
	if u.cache != nil {
		v, err, _ := u.sf.Do("list:"+userID, func() (interface{}, error) {
			if list, err := u.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := u.repo.ListByUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = u.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, NewError(FetchFailed, "failed to fetch todos")
		}
		return v.([]dom.Todo), nil
	}
	list, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, NewError(FetchFailed, "failed to fetch todos")
	}
	return list, nil
}

// UpdateStatus toggles completion on the todo matching (todoID, userID).
// A nonexistent todo and another user's todo fail identically: the caller
// can never tell whether the id exists at all.
func (u *TodoUseCase) UpdateStatus(ctx context.Context, userID, todoID string, isCompleted bool) (dom.Todo, error) {
	t, err := u.repo.UpdateStatus(ctx, userID, todoID, isCompleted)
	if err != nil {
		return dom.Todo{}, NewError(UpdateFailed, "failed to update todo status")
	}
	u.invalidateCache(ctx, userID)
	return t, nil
}

func (u *TodoUseCase) invalidateCache(ctx context.Context, userID string) {
	if u.cache != nil {
		_ = u.cache.Invalidate(ctx, userID)
	}
}
