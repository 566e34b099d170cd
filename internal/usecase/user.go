package usecase

import (
	"context"

	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"
	"github.com/kosukesaigusa/poker-hand-history/internal/repo"
)

// UserUseCase records authenticated principals.
type UserUseCase struct {
	repo repo.UserRepo
}

// NewUserUseCase returns a new UserUseCase.
func NewUserUseCase(r repo.UserRepo) *UserUseCase {
	return &UserUseCase{repo: r}
}

// SignUp registers the verified subject id. Idempotent: repeated signups
// with the same id succeed.
func (u *UserUseCase) SignUp(ctx context.Context, userID string) (dom.User, error) {
	user, err := u.repo.Upsert(ctx, userID)
	if err != nil {
		return dom.User{}, NewError(SignUpFailed, "failed to sign up")
	}
	return user, nil
}
