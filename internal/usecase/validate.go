package usecase

import (
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

// ValidateTitle checks the title rules in their contractual order:
// emptiness before length. The first failing rule wins.
// Lengths are rune counts, not bytes.
func ValidateTitle(title string) *Error {
	if strings.TrimSpace(title) == "" {
		return NewError(TitleEmpty, "title is required")
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return NewError(TitleTooLong, "title must be at most 100 characters")
	}
	return nil
}

// ValidateDescription accepts an absent description; a present one must fit
// the length bound.
func ValidateDescription(description *string) *Error {
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		return NewError(DescriptionTooLong, "description must be at most 500 characters")
	}
	return nil
}
