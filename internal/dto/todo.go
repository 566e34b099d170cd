package dto

import "time"

// CreateTodoRequest is the JSON body for POST /todos. Field rules (title
// non-empty and <=100 chars, description <=500 chars) are enforced by the
// use case so the first failing rule decides the error.
type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// UpdateTodoStatusRequest is the JSON body for PATCH /todos/:todoId/status.
type UpdateTodoStatusRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

type TodoResponse struct {
	TodoID      string    `json:"todoId"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateTodoResponse struct {
	Todo TodoResponse `json:"todo"`
}

type UpdateTodoStatusResponse struct {
	Todo TodoResponse `json:"todo"`
}

type ListTodosResponse struct {
	Todos []TodoResponse `json:"todos"`
}

// ErrorResponse is the uniform error body: a stable code, nothing else.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code string `json:"code"`
}
