package domain

import "net/http"

// Error is the failure type every service raises. It carries the HTTP-style
// status the transport layer must answer with, so handlers never invent
// status codes of their own.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUserNotFound     = &Error{Status: http.StatusNotFound, Message: "user not found"}
	ErrCategoryNotFound = &Error{Status: http.StatusNotFound, Message: "category not found"}
	ErrPostNotFound     = &Error{Status: http.StatusNotFound, Message: "post not found"}

	ErrEmailExists      = &Error{Status: http.StatusConflict, Message: "e-mail already exists"}
	ErrCategoryExists   = &Error{Status: http.StatusConflict, Message: "category already exists"}
	ErrCategoryHasPosts = &Error{Status: http.StatusConflict, Message: "category has linked posts"}

	// ErrInvalidCredentials deliberately carries the same message for an
	// unknown email and a wrong password.
	ErrInvalidCredentials = &Error{Status: http.StatusUnauthorized, Message: "invalid email or password"}

	ErrNotOwner      = &Error{Status: http.StatusUnauthorized, Message: "only the owner can modify this user"}
	ErrNotAdmin      = &Error{Status: http.StatusUnauthorized, Message: "only admins can manage categories"}
	ErrNotAuthor     = &Error{Status: http.StatusUnauthorized, Message: "only the author can modify this post"}
	ErrNotRegistered = &Error{Status: http.StatusUnauthorized, Message: "only registered users can create posts"}

	// ErrSessionExpired is surfaced distinctly from the ownership errors so
	// clients can prompt re-authentication.
	ErrSessionExpired = &Error{Status: http.StatusUnauthorized, Message: "expired login session"}

	ErrTooManyAttempts = &Error{Status: http.StatusTooManyRequests, Message: "too many login attempts"}
)
