package ports

import (
	"context"
	"time"
)

// CreatePostInput is the DTO passed from the transport layer to PostService.
type CreatePostInput struct {
	Title      string
	Content    string
	CategoryID string
	UserID     string
}

// UpdatePostInput carries a partial post update. Fields that trim to empty
// keep the stored value. UserID is the authenticated requester and must match
// the post's author.
type UpdatePostInput struct {
	ID      string
	Title   string
	Content string
	UserID  string
}

// PostAuthor is the minimal author shape nested in post projections.
type PostAuthor struct {
	ID    string
	Name  string
	Email string
}

// PostCategory is the minimal category shape nested in post projections.
type PostCategory struct {
	ID    string
	Title string
}

// PostView is the reduced outward projection of a post. Full entities are
// never serialized outward.
type PostView struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
	User      PostAuthor
	Category  PostCategory
}

// PostService defines use-case operations for posts.
type PostService interface {
	ReadPosts(ctx context.Context) ([]PostView, error)
	ReadPostsByUser(ctx context.Context, userID string) ([]PostView, error)
	ReadPost(ctx context.Context, id string) (*PostView, error)
	CreatePost(ctx context.Context, input CreatePostInput) (*PostView, error)
	UpdatePost(ctx context.Context, input UpdatePostInput) (*PostView, error)
	DeletePost(ctx context.Context, id, userID string) error
}
