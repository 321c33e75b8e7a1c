package ports

import (
	"context"
	"time"
)

// CreateCategoryInput is the DTO passed from the transport layer to
// CategoryService. UserID is the authenticated requester.
type CreateCategoryInput struct {
	Title  string
	UserID string
}

// UpdateCategoryInput carries a category rename. An empty title keeps the
// stored one.
type UpdateCategoryInput struct {
	ID     string
	Title  string
	UserID string
}

// CategoryView is the outward projection of a category.
type CategoryView struct {
	ID        string
	Title     string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryService defines use-case operations for categories. All mutations
// are admin-only.
type CategoryService interface {
	ReadCategories(ctx context.Context) ([]CategoryView, error)
	ReadCategory(ctx context.Context, id string) (*CategoryView, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*CategoryView, error)
	UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*CategoryView, error)
	DeleteCategory(ctx context.Context, id, userID string) error
}
