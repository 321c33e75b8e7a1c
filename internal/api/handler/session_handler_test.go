package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

type stubSessionService struct {
	createFn func(ctx context.Context, email, password string) (*ports.SessionResult, error)
}

func (s *stubSessionService) CreateSession(ctx context.Context, email, password string) (*ports.SessionResult, error) {
	return s.createFn(ctx, email, password)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionCreateSuccess(t *testing.T) {
	svc := &stubSessionService{
		createFn: func(_ context.Context, email, password string) (*ports.SessionResult, error) {
			if email != "ana@example.com" || password != "secret123" {
				t.Fatalf("credentials forwarded wrong: %q %q", email, password)
			}
			return &ports.SessionResult{
				Token: "signed-token",
				User:  ports.SessionUser{ID: "user-1", Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewSessionHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/v1/session",
		`{"email":"ana@example.com","password":"secret123"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var got sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got.Token != "signed-token" || got.User.ID != "user-1" || got.User.Role != domain.RoleUser {
		t.Fatalf("unexpected body: %+v", got)
	}
}

func TestSessionCreateInvalidCredentials(t *testing.T) {
	svc := &stubSessionService{
		createFn: func(context.Context, string, string) (*ports.SessionResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewSessionHandler(svc)

	c, _ := newTestContext(t, http.MethodPost, "/api/v1/session",
		`{"email":"ana@example.com","password":"wrong"}`)
	err := h.Create(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestSessionCreateValidation(t *testing.T) {
	svc := &stubSessionService{
		createFn: func(context.Context, string, string) (*ports.SessionResult, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewSessionHandler(svc)

	for name, body := range map[string]string{
		"missing password": `{"email":"ana@example.com"}`,
		"bad email":        `{"email":"not-an-email","password":"x"}`,
		"malformed json":   `{"email":`,
	} {
		c, _ := newTestContext(t, http.MethodPost, "/api/v1/session", body)
		err := h.Create(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			t.Fatalf("%s: err = %v, want *echo.HTTPError", name, err)
		}
		if he.Code != http.StatusBadRequest {
			t.Fatalf("%s: code = %d, want %d", name, he.Code, http.StatusBadRequest)
		}
	}
}
