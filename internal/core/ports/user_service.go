package ports

import (
	"context"
	"time"
)

// CreateUserInput is the DTO passed from the transport layer to UserService.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserInput carries a partial update. Empty fields leave the stored
// value untouched. RequesterID is the authenticated caller, not necessarily
// the target.
type UpdateUserInput struct {
	ID          string
	Name        string
	RequesterID string
}

// UserProfile is the outward projection of a user. It has no password field
// at all, so sanitization cannot be forgotten at a call site.
type UserProfile struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	ReadUsers(ctx context.Context) ([]UserProfile, error)
	ReadUser(ctx context.Context, id string) (*UserProfile, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*UserProfile, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*UserProfile, error)
	DeleteUser(ctx context.Context, id, requesterID string) error
}
