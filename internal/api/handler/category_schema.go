package handler

import (
	"time"

	"github.com/bloghub/blog-api/internal/core/ports"
)

type createCategoryRequest struct {
	Title string `json:"title" validate:"required,max=50"`
}

type updateCategoryRequest struct {
	Title string `json:"title" validate:"omitempty,max=50"`
}

type categoryResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	UserID    string    `json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toCategoryResponse(v *ports.CategoryView) categoryResponse {
	return categoryResponse{
		ID:        v.ID,
		Title:     v.Title,
		UserID:    v.UserID,
		CreatedAt: v.CreatedAt.UTC(),
		UpdatedAt: v.UpdatedAt.UTC(),
	}
}

func toCategoryResponses(views []ports.CategoryView) []categoryResponse {
	out := make([]categoryResponse, len(views))
	for i := range views {
		out[i] = toCategoryResponse(&views[i])
	}
	return out
}
