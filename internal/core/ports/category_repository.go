package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CreateCategoryData carries the attributes persisted for a new category.
type CreateCategoryData struct {
	Title  string
	UserID string
}

// CategoryRepository defines persistence operations for categories. The
// storage must enforce title uniqueness (race backstop for the service
// pre-check). Finders report absence as (nil, nil).
type CategoryRepository interface {
	Create(ctx context.Context, data CreateCategoryData) (*domain.Category, error)
	Save(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Remove(ctx context.Context, category *domain.Category) error
	Find(ctx context.Context) ([]*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindByTitle(ctx context.Context, title string) (*domain.Category, error)
}
