package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kn1ghtm0nster/blog/internal/api/handler"
	"github.com/kn1ghtm0nster/blog/internal/api/middleware"
	"github.com/kn1ghtm0nster/blog/internal/core/service"
	"github.com/kn1ghtm0nster/blog/internal/infrastructure/config"
	mongodb "github.com/kn1ghtm0nster/blog/internal/infrastructure/db/mongo"
	redisdb "github.com/kn1ghtm0nster/blog/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.BcryptCost, log)
	userService := service.NewUserService(userRepo, postRepo, cfg.BcryptCost, log)
	postService := service.NewPostService(postRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	throttle := middleware.Throttle(
		redisdb.NewThrottle(rdb, cfg.Throttle.Limit, cfg.Throttle.Window),
		"auth", log,
	)

	// --- Auth routes (anonymous, rate limited) ---
	auth := e.Group("/auth", throttle)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- User management ---
	users := e.Group("/v1/users", authMiddleware)
	users.GET("", userHandler.List, middleware.AdminOnly())
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Blog: reads are public, writes require a token ---
	e.GET("/v1/posts", postHandler.List)
	e.GET("/v1/posts/:id", postHandler.Get)
	e.POST("/v1/posts", postHandler.Create, authMiddleware)
	e.POST("/v1/posts/:id/comments", postHandler.AddComment, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
