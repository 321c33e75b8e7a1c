package ports

import (
	"context"

	"github.com/bloghub/blog-api/internal/core/domain"
)

// CreatePostData carries the attributes persisted for a new post.
type CreatePostData struct {
	Title      string
	Content    string
	UserID     string
	CategoryID string
}

// PostRepository defines persistence operations for posts.
//
// Find, FindByUserID and FindByCategoryID return posts ordered by creation
// time ascending with the author and category eagerly attached. FindByID
// attaches relations too and reports absence as (nil, nil).
type PostRepository interface {
	Create(ctx context.Context, data CreatePostData) (*domain.Post, error)
	Save(ctx context.Context, post *domain.Post) (*domain.Post, error)
	Remove(ctx context.Context, post *domain.Post) error
	Find(ctx context.Context) ([]*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindByCategoryID(ctx context.Context, categoryID string) ([]*domain.Post, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Post, error)
}
