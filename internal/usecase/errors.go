package usecase

import "fmt"

// ErrorKind is the closed set of failure reasons a use case can return.
// Handlers map every kind to a stable external code; the mapping is kept
// total by a test walking AllErrorKinds, so adding a kind here without
// touching the handlers fails the build's test run.
type ErrorKind int

const (
	TitleEmpty ErrorKind = iota
	TitleTooLong
	DescriptionTooLong
	CreateFailed
	FetchFailed
	UpdateFailed
	SignUpFailed
)

// AllErrorKinds lists every kind for totality checks.
var AllErrorKinds = []ErrorKind{
	TitleEmpty,
	TitleTooLong,
	DescriptionTooLong,
	CreateFailed,
	FetchFailed,
	UpdateFailed,
	SignUpFailed,
}

func (k ErrorKind) String() string {
	switch k {
	case TitleEmpty:
		return "TITLE_EMPTY"
	case TitleTooLong:
		return "TITLE_TOO_LONG"
	case DescriptionTooLong:
		return "DESCRIPTION_TOO_LONG"
	case CreateFailed:
		return "CREATE_ERROR"
	case FetchFailed:
		return "FETCH_ERROR"
	case UpdateFailed:
		return "UPDATE_ERROR"
	case SignUpFailed:
		return "SIGNUP_ERROR"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is a use-case failure. It carries no datastore error text: the
// message is fixed per kind and safe to log or return.
type Error struct {
	Kind ErrorKind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// NewError builds a use-case error of the given kind.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, msg: msg}
}
