package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories. They mirror the real Mongo adapters: finders
// report absence as (nil, nil), Create enforces the storage-level uniqueness
// backstops, and post finders attach relations.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users map[string]*domain.User
	order []string
	seq   int
	err   error // if set, every call returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, data ports.CreateUserData) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == data.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.seq++
	now := time.Now().UTC()
	u := &domain.User{
		ID:        fmt.Sprintf("user-%d", r.seq),
		Name:      data.Name,
		Email:     data.Email,
		Password:  data.Password,
		Role:      data.Role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)
	return cloneUser(u), nil
}

func (r *stubUserRepo) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Remove(_ context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	delete(r.users, user.ID)
	for i, id := range r.order {
		if id == user.ID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubUserRepo) Find(_ context.Context) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneUser(r.users[id]))
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return cloneUser(r.users[id]), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindAdmin(_ context.Context, id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	u := r.users[id]
	if u == nil || u.Role != domain.RoleAdmin {
		return nil, nil
	}
	return cloneUser(u), nil
}

// seedUser inserts a user directly, bypassing the service layer.
func (r *stubUserRepo) seedUser(name, email, password, role string) *domain.User {
	u, _ := r.Create(context.Background(), ports.CreateUserData{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	})
	return u
}

type stubCategoryRepo struct {
	categories map[string]*domain.Category
	order      []string
	seq        int
	err        error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[string]*domain.Category)}
}

func cloneCategory(c *domain.Category) *domain.Category {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCategoryRepo) Create(_ context.Context, data ports.CreateCategoryData) (*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.categories {
		if c.Title == data.Title {
			return nil, domain.ErrCategoryExists
		}
	}
	r.seq++
	now := time.Now().UTC()
	c := &domain.Category{
		ID:        fmt.Sprintf("category-%d", r.seq),
		Title:     data.Title,
		UserID:    data.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.categories[c.ID] = c
	r.order = append(r.order, c.ID)
	return cloneCategory(c), nil
}

func (r *stubCategoryRepo) Save(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.categories[category.ID] = cloneCategory(category)
	return cloneCategory(category), nil
}

func (r *stubCategoryRepo) Remove(_ context.Context, category *domain.Category) error {
	if r.err != nil {
		return r.err
	}
	delete(r.categories, category.ID)
	return nil
}

func (r *stubCategoryRepo) Find(_ context.Context) ([]*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Category, 0, len(r.order))
	for _, id := range r.order {
		if c, ok := r.categories[id]; ok {
			out = append(out, cloneCategory(c))
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id string) (*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return cloneCategory(r.categories[id]), nil
}

func (r *stubCategoryRepo) FindByTitle(_ context.Context, title string) (*domain.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.categories {
		if c.Title == title {
			return cloneCategory(c), nil
		}
	}
	return nil, nil
}

type stubPostRepo struct {
	posts map[string]*domain.Post
	order []string
	seq   int
	err   error

	// optional linked repos used to attach relations, like the $lookup
	// stages in the real adapter
	users      *stubUserRepo
	categories *stubCategoryRepo
}

func newStubPostRepo(users *stubUserRepo, categories *stubCategoryRepo) *stubPostRepo {
	return &stubPostRepo{
		posts:      make(map[string]*domain.Post),
		users:      users,
		categories: categories,
	}
}

func (r *stubPostRepo) attach(p *domain.Post) *domain.Post {
	clone := *p
	if r.users != nil {
		clone.User = cloneUser(r.users.users[p.UserID])
	}
	if r.categories != nil {
		clone.Category = cloneCategory(r.categories.categories[p.CategoryID])
	}
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, data ports.CreatePostData) (*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.seq++
	now := time.Now().UTC()
	p := &domain.Post{
		ID:         fmt.Sprintf("post-%d", r.seq),
		Title:      data.Title,
		Content:    data.Content,
		UserID:     data.UserID,
		CategoryID: data.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.posts[p.ID] = p
	r.order = append(r.order, p.ID)
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Save(_ context.Context, post *domain.Post) (*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *post
	clone.User = nil
	clone.Category = nil
	r.posts[post.ID] = &clone
	return r.attach(&clone), nil
}

func (r *stubPostRepo) Remove(_ context.Context, post *domain.Post) error {
	if r.err != nil {
		return r.err
	}
	delete(r.posts, post.ID)
	return nil
}

func (r *stubPostRepo) Find(_ context.Context) ([]*domain.Post, error) {
	return r.findWhere(func(*domain.Post) bool { return true })
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, nil
	}
	return r.attach(p), nil
}

func (r *stubPostRepo) FindByCategoryID(_ context.Context, categoryID string) ([]*domain.Post, error) {
	return r.findWhere(func(p *domain.Post) bool { return p.CategoryID == categoryID })
}

func (r *stubPostRepo) FindByUserID(_ context.Context, userID string) ([]*domain.Post, error) {
	return r.findWhere(func(p *domain.Post) bool { return p.UserID == userID })
}

func (r *stubPostRepo) findWhere(match func(*domain.Post) bool) ([]*domain.Post, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Post, 0)
	for _, id := range r.order {
		p, ok := r.posts[id]
		if ok && match(p) {
			out = append(out, r.attach(p))
		}
	}
	return out, nil
}
