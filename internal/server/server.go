package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealmuse/backend/config"
	"github.com/mealmuse/backend/internal/api"
	"github.com/mealmuse/backend/internal/bedrock"
	"github.com/mealmuse/backend/internal/database"
	"github.com/mealmuse/backend/internal/middleware"
	"github.com/mealmuse/backend/internal/router"
	"github.com/mealmuse/backend/internal/service"
)

// Server owns the HTTP listener and the wired-up application.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	http   *http.Server
}

// New builds the full dependency graph from configuration: databases, the
// Bedrock client, services and routes.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	rawDB, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db, err := database.NewGormDB(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	awsCfg, err := config.NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	bedrockClient := bedrock.NewClient(awsCfg.Config, awsCfg.BedrockEndpoint)

	var archive *service.ArchiveService
	if awsCfg.ArchiveBucket != "" {
		archive = service.NewArchiveService(awsCfg)
	} else {
		log.Printf("[Server] recipe archive disabled: no bucket configured")
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, service.NewRedisGenerationLocker(redisClient), bedrockClient, archive, cfg.BedrockModelID)

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, archive)
	healthHandler := api.NewHealthHandler(rawDB, redisClient)

	engine := router.SetupRouter(
		authHandler,
		recipeHandler,
		healthHandler,
		authService,
		middleware.NewGenerationRateLimiter(redisClient),
	)

	return &Server{
		cfg:    cfg,
		engine: engine,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}, nil
}

// Start begins serving requests. It blocks until the listener fails or is
// shut down.
func (s *Server) Start() error {
	log.Printf("[Server] listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
