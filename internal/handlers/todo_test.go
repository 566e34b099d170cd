package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kosukesaigusa/poker-hand-history/internal/auth"
	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"
	"github.com/kosukesaigusa/poker-hand-history/internal/dto"
	"github.com/kosukesaigusa/poker-hand-history/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubTodoUseCase struct {
	createFn       func(ctx context.Context, userID, title string, description *string) (dom.Todo, error)
	listFn         func(ctx context.Context, userID string) ([]dom.Todo, error)
	updateStatusFn func(ctx context.Context, userID, todoID string, isCompleted bool) (dom.Todo, error)
}

func (s *stubTodoUseCase) Create(ctx context.Context, userID, title string, description *string) (dom.Todo, error) {
	return s.createFn(ctx, userID, title, description)
}

func (s *stubTodoUseCase) List(ctx context.Context, userID string) ([]dom.Todo, error) {
	return s.listFn(ctx, userID)
}

func (s *stubTodoUseCase) UpdateStatus(ctx context.Context, userID, todoID string, isCompleted bool) (dom.Todo, error) {
	return s.updateStatusFn(ctx, userID, todoID, isCompleted)
}

// newTestRouter wires the todo routes behind a middleware that injects a
// fixed user id, standing in for verified bearer auth.
func newTestRouter(uc TodoUseCase, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) { auth.SetUserID(c, userID) })
	h := NewTodoHandler(uc)
	r.POST("/api/todos", h.Create)
	r.GET("/api/todos", h.List)
	r.PATCH("/api/todos/:todoId/status", h.UpdateStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errCodeOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code
}

func TestTodoHandler_Create(t *testing.T) {
	t.Run("201 with todo body", func(t *testing.T) {
		uc := &stubTodoUseCase{
			createFn: func(_ context.Context, userID, title string, description *string) (dom.Todo, error) {
				require.Equal(t, "user-1", userID)
				require.Nil(t, description)
				return dom.Todo{TodoID: "id-1", UserID: userID, Title: title}, nil
			},
		}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodPost, "/api/todos", `{"title":"買い物"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.CreateTodoResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, "買い物", resp.Todo.Title)
		require.Nil(t, resp.Todo.Description)
		require.False(t, resp.Todo.IsCompleted)
		// Absent description serializes as null, not "".
		require.Contains(t, w.Body.String(), `"description":null`)
	})

	t.Run("validation failure is todos.post.2", func(t *testing.T) {
		uc := &stubTodoUseCase{
			createFn: func(_ context.Context, _, title string, _ *string) (dom.Todo, error) {
				return dom.Todo{}, usecase.ValidateTitle(title)
			},
		}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodPost, "/api/todos", `{"title":""}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, CodeTodosValidationError, errCodeOf(t, w))
	})

	t.Run("malformed body is todos.post.2", func(t *testing.T) {
		uc := &stubTodoUseCase{}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodPost, "/api/todos", `{"title":`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, CodeTodosValidationError, errCodeOf(t, w))
	})

	t.Run("create failure is todos.post.1", func(t *testing.T) {
		uc := &stubTodoUseCase{
			createFn: func(_ context.Context, _, _ string, _ *string) (dom.Todo, error) {
				return dom.Todo{}, usecase.NewError(usecase.CreateFailed, "failed to create todo")
			},
		}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodPost, "/api/todos", `{"title":"ok"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, CodeTodosCreateError, errCodeOf(t, w))
	})
}

func TestTodoHandler_List(t *testing.T) {
	t.Run("200 with todos", func(t *testing.T) {
		desc := "d"
		uc := &stubTodoUseCase{
			listFn: func(_ context.Context, userID string) ([]dom.Todo, error) {
				require.Equal(t, "user-1", userID)
				return []dom.Todo{
					{TodoID: "id-2", UserID: userID, Title: "b", Description: &desc},
					{TodoID: "id-1", UserID: userID, Title: "a", IsCompleted: true},
				}, nil
			},
		}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodGet, "/api/todos", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ListTodosResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Todos, 2)
		require.Equal(t, "id-2", resp.Todos[0].TodoID)
	})

	t.Run("empty list is 200 with todos:[]", func(t *testing.T) {
		uc := &stubTodoUseCase{
			listFn: func(_ context.Context, _ string) ([]dom.Todo, error) { return nil, nil },
		}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodGet, "/api/todos", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.JSONEq(t, `{"todos":[]}`, w.Body.String())
	})

	t.Run("fetch failure is todos.get.1", func(t *testing.T) {
		uc := &stubTodoUseCase{
			listFn: func(_ context.Context, _ string) ([]dom.Todo, error) {
				return nil, usecase.NewError(usecase.FetchFailed, "failed to fetch todos")
			},
		}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodGet, "/api/todos", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, CodeTodosFetchError, errCodeOf(t, w))
	})
}

func TestTodoHandler_UpdateStatus(t *testing.T) {
	t.Run("200 with post-update todo", func(t *testing.T) {
		uc := &stubTodoUseCase{
			updateStatusFn: func(_ context.Context, userID, todoID string, isCompleted bool) (dom.Todo, error) {
				require.Equal(t, "user-1", userID)
				require.Equal(t, "id-1", todoID)
				require.True(t, isCompleted)
				return dom.Todo{TodoID: todoID, UserID: userID, Title: "t", IsCompleted: true}, nil
			},
		}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodPatch, "/api/todos/id-1/status", `{"isCompleted":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.UpdateTodoStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.True(t, resp.Todo.IsCompleted)
	})

	t.Run("unknown or foreign todo is todos.patch.1", func(t *testing.T) {
		uc := &stubTodoUseCase{
			updateStatusFn: func(_ context.Context, _, _ string, _ bool) (dom.Todo, error) {
				return dom.Todo{}, usecase.NewError(usecase.UpdateFailed, "failed to update todo status")
			},
		}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodPatch, "/api/todos/unknown-id/status", `{"isCompleted":true}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, CodeTodosUpdateError, errCodeOf(t, w))
	})

	t.Run("missing isCompleted is todos.patch.1", func(t *testing.T) {
		uc := &stubTodoUseCase{}
		w := doJSON(t, newTestRouter(uc, "user-1"), http.MethodPatch, "/api/todos/id-1/status", `{}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, CodeTodosUpdateError, errCodeOf(t, w))
	})
}
