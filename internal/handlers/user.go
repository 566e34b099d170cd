package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/kosukesaigusa/poker-hand-history/internal/auth"
	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"
	"github.com/kosukesaigusa/poker-hand-history/internal/dto"
	"github.com/kosukesaigusa/poker-hand-history/internal/usecase"

	"github.com/gin-gonic/gin"
)

// UserUseCase is what the handler needs from the user use case.
type UserUseCase interface {
	SignUp(ctx context.Context, userID string) (dom.User, error)
}

// UserHandler handles signup.
type UserHandler struct {
	uc UserUseCase
}

// NewUserHandler returns a new UserHandler.
func NewUserHandler(uc UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// SignUp godoc
// @Summary      Register the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  dto.SignUpResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /signup [post]
func (h *UserHandler) SignUp(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	user, err := h.uc.SignUp(c.Request.Context(), userID)
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) {
			respondError(c, http.StatusBadRequest, codeForSignUpError(ucErr.Kind))
			return
		}
		respondError(c, http.StatusBadRequest, CodeSignUpError)
		return
	}
	c.JSON(http.StatusCreated, dto.SignUpResponse{User: dto.UserResponse{
		UserID:    user.ID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}})
}
