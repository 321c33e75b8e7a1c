package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/metrics"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List handles GET /api/v1/categories.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}   categoryResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	views, err := h.service.ReadCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponses(views))
}

// Get handles GET /api/v1/categories/:categoryId.
//
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        categoryId  path      string  true  "Category id"
// @Success      200         {object}  categoryResponse
// @Failure      404         {object}  errorResponse
// @Router       /api/v1/categories/{categoryId} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	view, err := h.service.ReadCategory(c.Request().Context(), c.Param("categoryId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(view))
}

// Create handles POST /api/v1/categories: admin only.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      401   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.CreateCategory(c.Request().Context(), ports.CreateCategoryInput{
		Title:  req.Title,
		UserID: requesterID(c),
	})
	if err != nil {
		return err
	}

	metrics.CategoriesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCategoryResponse(view))
}

// Update handles PUT /api/v1/categories/:categoryId: admin only.
//
// @Summary      Rename a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        categoryId  path      string                 true  "Category id"
// @Param        body        body      updateCategoryRequest  true  "Fields to update"
// @Success      200         {object}  categoryResponse
// @Failure      401         {object}  errorResponse
// @Failure      404         {object}  errorResponse
// @Failure      409         {object}  errorResponse
// @Router       /api/v1/categories/{categoryId} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	var req updateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.UpdateCategory(c.Request().Context(), ports.UpdateCategoryInput{
		ID:     c.Param("categoryId"),
		Title:  req.Title,
		UserID: requesterID(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCategoryResponse(view))
}

// Delete handles DELETE /api/v1/categories/:categoryId: admin only, refused
// while posts still reference the category.
//
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        categoryId  path  string  true  "Category id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/v1/categories/{categoryId} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteCategory(c.Request().Context(), c.Param("categoryId"), requesterID(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
