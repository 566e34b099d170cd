package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kosukesaigusa/poker-hand-history/internal/dto"
	"github.com/kosukesaigusa/poker-hand-history/internal/usecase"
)

// Stable external error codes. Clients match on these strings, so they
// never change even when messages or internals do.
const (
	CodeTodosFetchError      = "todos.get.1"
	CodeTodosCreateError     = "todos.post.1"
	CodeTodosValidationError = "todos.post.2"
	CodeTodosUpdateError     = "todos.patch.1"
	CodeSignUpError          = "signup.1"
)

func respondError(c *gin.Context, status int, code string) {
	c.JSON(status, dto.ErrorResponse{Error: dto.ErrorBody{Code: code}})
}

// The codeFor* functions below map use-case error kinds to external codes.
// Each switch lists every kind explicitly; the trailing panic is reachable
// only for a kind added to the enum but not to the mapping, which the
// totality test in errcode_test.go turns into a test failure.

func codeForCreateError(k usecase.ErrorKind) string {
	switch k {
	case usecase.TitleEmpty, usecase.TitleTooLong, usecase.DescriptionTooLong:
		return CodeTodosValidationError
	case usecase.CreateFailed:
		return CodeTodosCreateError
	case usecase.FetchFailed, usecase.UpdateFailed, usecase.SignUpFailed:
		// Not produced by Create; route to the operation's generic code.
		return CodeTodosCreateError
	}
	panic(fmt.Sprintf("unmapped error kind: %v", k))
}

func codeForListError(k usecase.ErrorKind) string {
	switch k {
	case usecase.FetchFailed:
		return CodeTodosFetchError
	case usecase.TitleEmpty, usecase.TitleTooLong, usecase.DescriptionTooLong,
		usecase.CreateFailed, usecase.UpdateFailed, usecase.SignUpFailed:
		return CodeTodosFetchError
	}
	panic(fmt.Sprintf("unmapped error kind: %v", k))
}

func codeForUpdateStatusError(k usecase.ErrorKind) string {
	switch k {
	case usecase.UpdateFailed:
		return CodeTodosUpdateError
	case usecase.TitleEmpty, usecase.TitleTooLong, usecase.DescriptionTooLong,
		usecase.CreateFailed, usecase.FetchFailed, usecase.SignUpFailed:
		return CodeTodosUpdateError
	}
	panic(fmt.Sprintf("unmapped error kind: %v", k))
}

func codeForSignUpError(k usecase.ErrorKind) string {
	switch k {
	case usecase.SignUpFailed:
		return CodeSignUpError
	case usecase.TitleEmpty, usecase.TitleTooLong, usecase.DescriptionTooLong,
		usecase.CreateFailed, usecase.FetchFailed, usecase.UpdateFailed:
		return CodeSignUpError
	}
	panic(fmt.Sprintf("unmapped error kind: %v", k))
}
