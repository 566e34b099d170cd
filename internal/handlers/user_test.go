package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/kosukesaigusa/poker-hand-history/internal/auth"
	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"
	"github.com/kosukesaigusa/poker-hand-history/internal/dto"
	"github.com/kosukesaigusa/poker-hand-history/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubUserUseCase struct {
	signUpFn func(ctx context.Context, userID string) (dom.User, error)
}

func (s *stubUserUseCase) SignUp(ctx context.Context, userID string) (dom.User, error) {
	return s.signUpFn(ctx, userID)
}

func newUserTestRouter(uc UserUseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { auth.SetUserID(c, userID) })
	r.POST("/api/signup", NewUserHandler(uc).SignUp)
	return r
}

func TestUserHandler_SignUp(t *testing.T) {
	t.Run("201 with user body", func(t *testing.T) {
		uc := &stubUserUseCase{
			signUpFn: func(_ context.Context, userID string) (dom.User, error) {
				require.Equal(t, "firebase-uid-1", userID)
				return dom.User{ID: userID}, nil
			},
		}
		w := doJSON(t, newUserTestRouter(uc, "firebase-uid-1"), http.MethodPost, "/api/signup", "")
		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.SignUpResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "firebase-uid-1", resp.User.UserID)
	})

	t.Run("failure is signup.1", func(t *testing.T) {
		uc := &stubUserUseCase{
			signUpFn: func(_ context.Context, _ string) (dom.User, error) {
				return dom.User{}, usecase.NewError(usecase.SignUpFailed, "failed to sign up")
			},
		}
		w := doJSON(t, newUserTestRouter(uc, "firebase-uid-1"), http.MethodPost, "/api/signup", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, CodeSignUpError, errCodeOf(t, w))
	})
}
