package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const testSecret = "test-secret"

type stubThrottle struct {
	blocked  bool
	checkErr error
	recorded []string
	resets   []string
}

func (t *stubThrottle) TooMany(_ context.Context, _ string) (bool, error) {
	return t.blocked, t.checkErr
}

func (t *stubThrottle) Record(_ context.Context, email string) error {
	t.recorded = append(t.recorded, email)
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	t.resets = append(t.resets, email)
	return nil
}

func seedCredentials(t *testing.T, repo *stubUserRepo, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return repo.seedUser("Ana", email, string(hash), domain.RoleUser)
}

func TestCreateSessionSignsSubjectOnlyToken(t *testing.T) {
	repo := newStubUserRepo()
	user := seedCredentials(t, repo, "ana@example.com", "secret123")
	throttle := &stubThrottle{}
	svc := NewSessionService(repo, throttle, testSecret, time.Hour, discardLogger)

	result, err := svc.CreateSession(context.Background(), "ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if result.User.ID != user.ID || result.User.Role != domain.RoleUser {
		t.Fatalf("unexpected session user: %+v", result.User)
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, &claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims.Subject != user.ID {
		t.Fatalf("sub = %q, want %q", claims.Subject, user.ID)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatal("missing iat or exp")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("ttl = %v, want %v", got, time.Hour)
	}

	if len(throttle.resets) != 1 || throttle.resets[0] != "ana@example.com" {
		t.Fatalf("throttle resets = %v", throttle.resets)
	}
}

// Unknown email and wrong password must produce the same error so callers
// cannot probe which addresses are registered.
func TestCreateSessionUniformCredentialError(t *testing.T) {
	repo := newStubUserRepo()
	seedCredentials(t, repo, "ana@example.com", "secret123")
	throttle := &stubThrottle{}
	svc := NewSessionService(repo, throttle, testSecret, time.Hour, discardLogger)

	_, unknownErr := svc.CreateSession(context.Background(), "ghost@example.com", "whatever")
	_, wrongErr := svc.CreateSession(context.Background(), "ana@example.com", "wrong")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCredentials", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("messages differ: %q vs %q", unknownErr, wrongErr)
	}
	if len(throttle.recorded) != 2 {
		t.Fatalf("recorded attempts = %d, want 2", len(throttle.recorded))
	}
}

func TestCreateSessionThrottled(t *testing.T) {
	repo := newStubUserRepo()
	seedCredentials(t, repo, "ana@example.com", "secret123")
	throttle := &stubThrottle{blocked: true}
	svc := NewSessionService(repo, throttle, testSecret, time.Hour, discardLogger)

	_, err := svc.CreateSession(context.Background(), "ana@example.com", "secret123")
	if !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("err = %v, want ErrTooManyAttempts", err)
	}
}

// If the throttle store is down, logins proceed instead of locking everyone
// out.
func TestCreateSessionThrottleFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	seedCredentials(t, repo, "ana@example.com", "secret123")
	throttle := &stubThrottle{checkErr: errors.New("redis gone")}
	svc := NewSessionService(repo, throttle, testSecret, time.Hour, discardLogger)

	result, err := svc.CreateSession(context.Background(), "ana@example.com", "secret123")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
}

func TestCreateSessionNilThrottle(t *testing.T) {
	repo := newStubUserRepo()
	seedCredentials(t, repo, "ana@example.com", "secret123")
	svc := NewSessionService(repo, nil, testSecret, time.Hour, discardLogger)

	if _, err := svc.CreateSession(context.Background(), "ana@example.com", "secret123"); err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := svc.CreateSession(context.Background(), "ana@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
