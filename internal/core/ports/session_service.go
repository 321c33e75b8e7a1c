package ports

import "context"

// SessionUser is the minimal public projection returned with a fresh token.
type SessionUser struct {
	ID   string
	Role string
}

// SessionResult is the outcome of a successful authentication: a signed
// token bound to the user's id as subject, plus the minimal user projection.
type SessionResult struct {
	Token string
	User  SessionUser
}

// SessionService authenticates credentials and issues tokens. There is no
// stored session state; each request proves itself via the token.
type SessionService interface {
	CreateSession(ctx context.Context, email, password string) (*SessionResult, error)
}
