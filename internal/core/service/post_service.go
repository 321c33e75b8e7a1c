package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// PostService implements post management. Any registered user can publish;
// only the author can update or delete a post afterwards.
type PostService struct {
	posts      ports.PostRepository
	users      ports.UserRepository
	categories ports.CategoryRepository
	logger     zerolog.Logger
}

func NewPostService(
	posts ports.PostRepository,
	users ports.UserRepository,
	categories ports.CategoryRepository,
	logger zerolog.Logger,
) *PostService {
	return &PostService{posts: posts, users: users, categories: categories, logger: logger}
}

func (s *PostService) ReadPosts(ctx context.Context) ([]ports.PostView, error) {
	posts, err := s.posts.Find(ctx)
	if err != nil {
		return nil, err
	}
	return toPostViews(posts), nil
}

func (s *PostService) ReadPostsByUser(ctx context.Context, userID string) ([]ports.PostView, error) {
	posts, err := s.posts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toPostViews(posts), nil
}

func (s *PostService) ReadPost(ctx context.Context, id string) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	view := toPostView(post)
	return &view, nil
}

// CreatePost publishes a post under an existing category. Creating the same
// post twice yields two posts; there is no idempotency guard here, unlike the
// email and title uniqueness rules.
func (s *PostService) CreatePost(ctx context.Context, input ports.CreatePostInput) (*ports.PostView, error) {
	category, err := s.categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	user, err := s.users.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotRegistered
	}

	post, err := s.posts.Create(ctx, ports.CreatePostData{
		Title:      strings.TrimSpace(input.Title),
		Content:    strings.TrimSpace(input.Content),
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("post_id", post.ID).Str("user_id", input.UserID).Msg("post created")

	post.User = user
	post.Category = category
	view := toPostView(post)
	return &view, nil
}

// UpdatePost replaces title and/or content. Values that trim to empty keep
// the stored ones.
func (s *PostService) UpdatePost(ctx context.Context, input ports.UpdatePostInput) (*ports.PostView, error) {
	post, err := s.posts.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	if post.UserID != input.UserID {
		return nil, domain.ErrNotAuthor
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		post.Title = title
	}
	if content := strings.TrimSpace(input.Content); content != "" {
		post.Content = content
	}
	post.UpdatedAt = time.Now().UTC()

	saved, err := s.posts.Save(ctx, post)
	if err != nil {
		return nil, err
	}

	view := toPostView(saved)
	return &view, nil
}

func (s *PostService) DeletePost(ctx context.Context, id, userID string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return domain.ErrPostNotFound
	}
	if post.UserID != userID {
		return domain.ErrNotAuthor
	}

	if err := s.posts.Remove(ctx, post); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

func toPostViews(posts []*domain.Post) []ports.PostView {
	views := make([]ports.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, toPostView(p))
	}
	return views
}

func toPostView(p *domain.Post) ports.PostView {
	view := ports.PostView{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
	}
	if p.User != nil {
		view.User = ports.PostAuthor{ID: p.User.ID, Name: p.User.Name, Email: p.User.Email}
	} else {
		view.User.ID = p.UserID
	}
	if p.Category != nil {
		view.Category = ports.PostCategory{ID: p.Category.ID, Title: p.Category.Title}
	} else {
		view.Category.ID = p.CategoryID
	}
	return view
}
