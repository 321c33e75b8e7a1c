package handler

import (
	"time"

	"github.com/bloghub/blog-api/internal/core/ports"
)

type createPostRequest struct {
	Title      string `json:"title"       validate:"required"`
	Content    string `json:"content"     validate:"required"`
	CategoryID string `json:"category_id" validate:"required"`
}

type updatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// postAuthorResponse and postCategoryResponse are the minimal nested shapes;
// the full user (and in particular any password material) never leaves the
// service layer.
type postAuthorResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type postCategoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type postResponse struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"created_at"`
	User      postAuthorResponse   `json:"user"`
	Category  postCategoryResponse `json:"category"`
}

func toPostResponse(v *ports.PostView) postResponse {
	return postResponse{
		ID:        v.ID,
		Title:     v.Title,
		Content:   v.Content,
		CreatedAt: v.CreatedAt.UTC(),
		User: postAuthorResponse{
			ID:    v.User.ID,
			Name:  v.User.Name,
			Email: v.User.Email,
		},
		Category: postCategoryResponse{
			ID:    v.Category.ID,
			Title: v.Category.Title,
		},
	}
}

func toPostResponses(views []ports.PostView) []postResponse {
	out := make([]postResponse, len(views))
	for i := range views {
		out[i] = toPostResponse(&views[i])
	}
	return out
}
