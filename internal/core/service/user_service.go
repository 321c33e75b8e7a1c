package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// UserService implements account management. Mutations are self-service
// only: the requester must be the target user.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

func (s *UserService) ReadUsers(ctx context.Context) ([]ports.UserProfile, error) {
	users, err := s.repo.Find(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]ports.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, toUserProfile(u))
	}
	return profiles, nil
}

func (s *UserService) ReadUser(ctx context.Context, id string) (*ports.UserProfile, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	profile := toUserProfile(user)
	return &profile, nil
}

// CreateUser registers a new account. The email must be unused and the
// password is hashed before it ever reaches the repository. Role always
// starts as "user"; admins are promoted out of band.
func (s *UserService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*ports.UserProfile, error) {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, ports.CreateUserData{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Role:     domain.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user registered")

	profile := toUserProfile(user)
	return &profile, nil
}

// UpdateUser changes the user's name. An empty name keeps the stored one.
func (s *UserService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*ports.UserProfile, error) {
	user, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if input.RequesterID != user.ID {
		return nil, domain.ErrNotOwner
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	user.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := toUserProfile(saved)
	return &profile, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id, requesterID string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if requesterID != user.ID {
		return domain.ErrNotOwner
	}

	if err := s.repo.Remove(ctx, user); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func toUserProfile(u *domain.User) ports.UserProfile {
	return ports.UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
