package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CategoryService implements category management. Every mutation requires
// the requester to hold the admin role, verified against the store rather
// than trusted from the token.
type CategoryService struct {
	categories ports.CategoryRepository
	users      ports.UserRepository
	posts      ports.PostRepository
	logger     zerolog.Logger
}

func NewCategoryService(
	categories ports.CategoryRepository,
	users ports.UserRepository,
	posts ports.PostRepository,
	logger zerolog.Logger,
) *CategoryService {
	return &CategoryService{categories: categories, users: users, posts: posts, logger: logger}
}

func (s *CategoryService) ReadCategories(ctx context.Context) ([]ports.CategoryView, error) {
	categories, err := s.categories.Find(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ports.CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, toCategoryView(c))
	}
	return views, nil
}

func (s *CategoryService) ReadCategory(ctx context.Context, id string) (*ports.CategoryView, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	view := toCategoryView(category)
	return &view, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, input ports.CreateCategoryInput) (*ports.CategoryView, error) {
	existing, err := s.categories.FindByTitle(ctx, input.Title)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrCategoryExists
	}

	admin, err := s.users.FindAdmin(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotAdmin
	}

	category, err := s.categories.Create(ctx, ports.CreateCategoryData{
		Title:  input.Title,
		UserID: input.UserID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("category_id", category.ID).Str("title", category.Title).Msg("category created")

	view := toCategoryView(category)
	return &view, nil
}

// UpdateCategory renames a category. The new title must not collide with an
// existing one; an empty title keeps the stored one.
func (s *CategoryService) UpdateCategory(ctx context.Context, input ports.UpdateCategoryInput) (*ports.CategoryView, error) {
	category, err := s.categories.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}

	admin, err := s.users.FindAdmin(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrNotAdmin
	}

	if input.Title != "" {
		taken, err := s.categories.FindByTitle(ctx, input.Title)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != category.ID {
			return nil, domain.ErrCategoryExists
		}
		category.Title = input.Title
	}
	category.UpdatedAt = time.Now().UTC()

	saved, err := s.categories.Save(ctx, category)
	if err != nil {
		return nil, err
	}

	view := toCategoryView(saved)
	return &view, nil
}

// DeleteCategory removes a category unless any post still references it. The
// reference check is a live lookup so posts created moments earlier count.
func (s *CategoryService) DeleteCategory(ctx context.Context, id, userID string) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrCategoryNotFound
	}

	admin, err := s.users.FindAdmin(ctx, userID)
	if err != nil {
		return err
	}
	if admin == nil {
		return domain.ErrNotAdmin
	}

	linked, err := s.posts.FindByCategoryID(ctx, id)
	if err != nil {
		return err
	}
	if len(linked) > 0 {
		return domain.ErrCategoryHasPosts
	}

	if err := s.categories.Remove(ctx, category); err != nil {
		return err
	}

	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return nil
}

func toCategoryView(c *domain.Category) ports.CategoryView {
	return ports.CategoryView{
		ID:        c.ID,
		Title:     c.Title,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
