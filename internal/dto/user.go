package dto

import "time"

// UserResponse is returned after signup.
type UserResponse struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type SignUpResponse struct {
	User UserResponse `json:"user"`
}
