package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bloghub/blog-api/internal/api/middleware"
)

// requesterID extracts the authenticated user id injected by the Deserialize
// middleware. Empty means the request is unauthenticated; routes behind
// RequireUser never see that.
func requesterID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextUserID).(string)
	return id
}
