package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bloghub/blog-api/docs"
	"github.com/bloghub/blog-api/internal/api/handler"
	"github.com/bloghub/blog-api/internal/api/middleware"
	"github.com/bloghub/blog-api/internal/core/service"
	"github.com/bloghub/blog-api/internal/infrastructure/config"
	mongodb "github.com/bloghub/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bloghub/blog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog_api"))
	e.Use(middleware.Deserialize(cfg.JWTSecret))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	// --- Services ---
	throttle := redisdb.NewLoginLimiter(rdb, cfg.Login.MaxAttempts, cfg.Login.Window)
	userService := service.NewUserService(userRepo, cfg.BcryptCost, log)
	categoryService := service.NewCategoryService(categoryRepo, userRepo, postRepo, log)
	postService := service.NewPostService(postRepo, userRepo, categoryRepo, log)
	sessionService := service.NewSessionService(userRepo, throttle, cfg.JWTSecret, cfg.TokenTTL, log)

	// --- Handlers ---
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	postHandler := handler.NewPostHandler(postService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	requireUser := middleware.RequireUser()

	v1 := e.Group("/api/v1")

	v1.POST("/session", sessionHandler.Create)

	v1.GET("/users", userHandler.List)
	v1.GET("/users/:userId", userHandler.Get)
	v1.POST("/users", userHandler.Create)
	v1.PUT("/users/:userId", userHandler.Update, requireUser)
	v1.DELETE("/users/:userId", userHandler.Delete, requireUser)

	v1.GET("/categories", categoryHandler.List)
	v1.GET("/categories/:categoryId", categoryHandler.Get)
	v1.POST("/categories", categoryHandler.Create, requireUser)
	v1.PUT("/categories/:categoryId", categoryHandler.Update, requireUser)
	v1.DELETE("/categories/:categoryId", categoryHandler.Delete, requireUser)

	v1.GET("/posts", postHandler.List)
	v1.GET("/posts/:postId", postHandler.Get)
	v1.GET("/posts/user/:userId", postHandler.ListByUser)
	v1.POST("/posts", postHandler.Create, requireUser)
	v1.PUT("/posts/:postId", postHandler.Update, requireUser)
	v1.DELETE("/posts/:postId", postHandler.Delete, requireUser)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// Swagger UI is not exposed in production.
	if cfg.Env != "production" {
		e.GET("/swagger/*", echoswagger.WrapHandler)
	}

	return e
}
