package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CreateUserData carries the attributes persisted for a new user. Password is
// already hashed by the time it reaches a repository.
type CreateUserData struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserRepository defines persistence operations for users.
//
// Targeted finders report absence as (nil, nil); deciding whether absence is
// an error belongs to the service layer. The storage backing this interface
// must enforce email uniqueness itself: the service pre-check alone cannot
// guard two racing registrations.
type UserRepository interface {
	Create(ctx context.Context, data CreateUserData) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	Remove(ctx context.Context, user *domain.User) error
	Find(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAdmin resolves the user only when it exists AND holds the admin role.
	FindAdmin(ctx context.Context, id string) (*domain.User, error)
}
