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

// TodoUseCase is what the handler needs from the todo use case.
type TodoUseCase interface {
	Create(ctx context.Context, userID, title string, description *string) (dom.Todo, error)
	List(ctx context.Context, userID string) ([]dom.Todo, error)
	UpdateStatus(ctx context.Context, userID, todoID string, isCompleted bool) (dom.Todo, error)
}

type TodoHandler struct {
	uc TodoUseCase
}

func NewTodoHandler(uc TodoUseCase) *TodoHandler {
	return &TodoHandler{uc: uc}
}

// Create godoc
// @Summary      Create a todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateTodoRequest  true  "Todo body"
// @Success      201   {object}  dto.CreateTodoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeTodosValidationError)
		return
	}

	t, err := h.uc.Create(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) {
			respondError(c, http.StatusBadRequest, codeForCreateError(ucErr.Kind))
			return
		}
		respondError(c, http.StatusBadRequest, CodeTodosCreateError)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTodoResponse{Todo: todoToResponse(t)})
}

// List godoc
// @Summary      List the authenticated user's todos
// @Tags         todos
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListTodosResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	userID := auth.UserIDFromContext(c)

	list, err := h.uc.List(c.Request.Context(), userID)
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) {
			respondError(c, http.StatusBadRequest, codeForListError(ucErr.Kind))
			return
		}
		respondError(c, http.StatusBadRequest, CodeTodosFetchError)
		return
	}
	c.JSON(http.StatusOK, dto.ListTodosResponse{Todos: todosToResponses(list)})
}

// UpdateStatus godoc
// @Summary      Update a todo's completion status
// @Tags         todos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        todoId  path      string  true  "Todo ID"
// @Param        body    body      dto.UpdateTodoStatusRequest  true  "Status"
// @Success      200     {object}  dto.UpdateTodoStatusResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /todos/{todoId}/status [patch]
func (h *TodoHandler) UpdateStatus(c *gin.Context) {
	userID := auth.UserIDFromContext(c)
	todoID := c.Param("todoId")

	var req dto.UpdateTodoStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeTodosUpdateError)
		return
	}

	t, err := h.uc.UpdateStatus(c.Request.Context(), userID, todoID, *req.IsCompleted)
	if err != nil {
		var ucErr *usecase.Error
		if errors.As(err, &ucErr) {
			respondError(c, http.StatusBadRequest, codeForUpdateStatusError(ucErr.Kind))
			return
		}
		respondError(c, http.StatusBadRequest, CodeTodosUpdateError)
		return
	}
	c.JSON(http.StatusOK, dto.UpdateTodoStatusResponse{Todo: todoToResponse(t)})
}

func todoToResponse(t dom.Todo) dto.TodoResponse {
	return dto.TodoResponse{
		TodoID:      t.TodoID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func todosToResponses(list []dom.Todo) []dto.TodoResponse {
	out := make([]dto.TodoResponse, len(list))
	for i := range list {
		out[i] = todoToResponse(list[i])
	}
	return out
}
