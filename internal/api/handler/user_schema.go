package handler

import (
	"time"

	"github.com/bloghub/blog-api/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required,max=120"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	Name string `json:"name" validate:"omitempty,max=120"`
}

// userResponse is the outward JSON shape of a user. There is deliberately no
// password field to omit.
type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(p *ports.UserProfile) userResponse {
	return userResponse{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Role:      p.Role,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func toUserResponses(profiles []ports.UserProfile) []userResponse {
	out := make([]userResponse, len(profiles))
	for i := range profiles {
		out[i] = toUserResponse(&profiles[i])
	}
	return out
}
