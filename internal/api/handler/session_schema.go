package handler

import "github.com/bloghub/blog-api/internal/core/ports"

type createSessionRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionUserResponse struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}

type sessionResponse struct {
	Token string              `json:"token"`
	User  sessionUserResponse `json:"user"`
}

func toSessionResponse(r *ports.SessionResult) sessionResponse {
	return sessionResponse{
		Token: r.Token,
		User:  sessionUserResponse{ID: r.User.ID, Role: r.User.Role},
	}
}
