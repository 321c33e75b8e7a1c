package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for posts.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/v1/posts.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}   postResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	views, err := h.service.ReadPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(views))
}

// ListByUser handles GET /api/v1/posts/user/:userId.
//
// @Summary      List posts by author
// @Tags         posts
// @Produce      json
// @Param        userId  path      string  true  "Author id"
// @Success      200     {array}   postResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/v1/posts/user/{userId} [get]
func (h *PostHandler) ListByUser(c echo.Context) error {
	views, err := h.service.ReadPostsByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponses(views))
}

// Get handles GET /api/v1/posts/:postId.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        postId  path      string  true  "Post id"
// @Success      200     {object}  postResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/v1/posts/{postId} [get]
func (h *PostHandler) Get(c echo.Context) error {
	view, err := h.service.ReadPost(c.Request().Context(), c.Param("postId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(view))
}

// Create handles POST /api/v1/posts: any registered user.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.CreatePost(c.Request().Context(), ports.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		UserID:     requesterID(c),
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toPostResponse(view))
}

// Update handles PUT /api/v1/posts/:postId: author only.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        postId  path      string             true  "Post id"
// @Param        body    body      updatePostRequest  true  "Fields to update"
// @Success      200     {object}  postResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/v1/posts/{postId} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	view, err := h.service.UpdatePost(c.Request().Context(), ports.UpdatePostInput{
		ID:      c.Param("postId"),
		Title:   req.Title,
		Content: req.Content,
		UserID:  requesterID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPostResponse(view))
}

// Delete handles DELETE /api/v1/posts/:postId: author only.
//
// @Summary      Delete a post
// @Tags         posts
// @Security     BearerAuth
// @Param        postId  path  string  true  "Post id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/posts/{postId} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePost(c.Request().Context(), c.Param("postId"), requesterID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
