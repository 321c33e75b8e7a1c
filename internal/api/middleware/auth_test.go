package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const testSecret = "test-secret"

func signTestToken(t *testing.T, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

// runDeserialize sends a request through Deserialize into a probe handler and
// returns the user id the handler observed plus the middleware error.
func runDeserialize(t *testing.T, authHeader string) (string, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seenID string
	handler := Deserialize(testSecret)(func(c echo.Context) error {
		seenID, _ = c.Get(ContextUserID).(string)
		return c.NoContent(http.StatusOK)
	})
	return seenID, handler(c)
}

func TestDeserializeValidToken(t *testing.T) {
	token := signTestToken(t, "user-1", time.Hour)

	id, err := runDeserialize(t, "Bearer "+token)
	if err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if id != "user-1" {
		t.Fatalf("user id = %q, want %q", id, "user-1")
	}
}

func TestDeserializeNoHeader(t *testing.T) {
	id, err := runDeserialize(t, "")
	if err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if id != "" {
		t.Fatalf("user id = %q, want empty", id)
	}
}

func TestDeserializeExpiredToken(t *testing.T) {
	token := signTestToken(t, "user-1", -time.Minute)

	_, err := runDeserialize(t, "Bearer "+token)
	if !errors.Is(err, domain.ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
}

// A garbage or wrongly-signed token is ignored, the request continues
// unauthenticated and RequireUser blocks it downstream.
func TestDeserializeInvalidToken(t *testing.T) {
	wrongKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	for name, header := range map[string]string{
		"garbage":       "Bearer not.a.token",
		"wrong key":     "Bearer " + wrongKey,
		"not bearer":    "Basic dXNlcjpwYXNz",
		"missing token": "Bearer",
	} {
		id, err := runDeserialize(t, header)
		if err != nil {
			t.Fatalf("%s: handler err: %v", name, err)
		}
		if id != "" {
			t.Fatalf("%s: user id = %q, want empty", name, id)
		}
	}
}

func TestRequireUserBlocksAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireUser()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("err = %v, want *echo.HTTPError", err)
	}
	if he.Code != http.StatusForbidden {
		t.Fatalf("code = %d, want %d", he.Code, http.StatusForbidden)
	}
	if he.Message != "invalid login session" {
		t.Fatalf("message = %v, want %q", he.Message, "invalid login session")
	}
}

func TestRequireUserPassesAuthenticated(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(ContextUserID, "user-1")

	handler := RequireUser()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
