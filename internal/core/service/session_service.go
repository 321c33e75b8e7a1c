package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// LoginThrottle abstracts the attempt counter (Redis). A nil throttle
// disables throttling.
type LoginThrottle interface {
	// TooMany reports whether the email has exhausted its attempt budget.
	TooMany(ctx context.Context, email string) (bool, error)
	// Record counts a failed attempt.
	Record(ctx context.Context, email string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, email string) error
}

// SessionService authenticates credentials and signs tokens. The token
// carries the user id as subject and nothing else about the identity; role
// checks are always performed against the store.
type SessionService struct {
	users     ports.UserRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewSessionService(
	users ports.UserRepository,
	throttle LoginThrottle,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		users:     users,
		throttle:  throttle,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// CreateSession verifies the email/password pair and issues a token. Unknown
// email and wrong password fail with the identical error so a caller cannot
// probe which addresses are registered.
func (s *SessionService) CreateSession(ctx context.Context, email, password string) (*ports.SessionResult, error) {
	if s.throttle != nil {
		blocked, err := s.throttle.TooMany(ctx, email)
		if err != nil {
			// Throttle store down: let the login through rather than lock
			// everyone out.
			s.logger.Warn().Err(err).Msg("login throttle check failed, allowing attempt")
		} else if blocked {
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.signToken(user.ID)
	if err != nil {
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Msg("session created")

	return &ports.SessionResult{
		Token: token,
		User:  ports.SessionUser{ID: user.ID, Role: user.Role},
	}, nil
}

func (s *SessionService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Record(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login attempt")
	}
}

func (s *SessionService) signToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
