package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/soloapps/user-service/internal/api/handler"
	"github.com/soloapps/user-service/internal/api/middleware"
	"github.com/soloapps/user-service/internal/core/security"
	"github.com/soloapps/user-service/internal/core/service"
	mongodb "github.com/soloapps/user-service/internal/infrastructure/db/mongo"
	"github.com/soloapps/user-service/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("user_service"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokens := security.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	userService := service.NewUserService(userRepo, hasher, tokens, log)
	userHandler := handler.NewUserHandler(userService)
	authRequired := middleware.Auth(cfg.JWTSecret, userService)

	// --- User routes ---
	g := e.Group("/api/user")
	g.POST("/register", userHandler.Register)
	g.POST("/login", userHandler.Login)
	g.GET("", userHandler.List)
	g.GET("/:username", userHandler.Get)
	g.PUT("/update/:id", userHandler.Update, authRequired)
	g.DELETE("/delete/:id", userHandler.Delete, authRequired)

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
