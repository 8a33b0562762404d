package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mealmuse/backend/internal/api"
	"github.com/mealmuse/backend/internal/middleware"
	"github.com/mealmuse/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	healthHandler *api.HealthHandler,
	authService service.IAuthService,
	generationLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	router.GET("/healthz", healthHandler.Check)

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		recipes := protected.Group("/recipes")
		{
			generate := recipes.Group("")
			if generationLimiter != nil {
				generate.Use(generationLimiter.RateLimitMiddleware())
			}
			generate.POST("/generate", recipeHandler.Generate)

			recipes.GET("", recipeHandler.List)
			recipes.GET("/search", recipeHandler.Search)
			recipes.GET("/:id", recipeHandler.Get)
			recipes.DELETE("/:id", recipeHandler.Delete)
			recipes.GET("/:id/share", recipeHandler.Share)
		}
	}

	return router
}
