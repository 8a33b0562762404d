package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mealmuse/backend/internal/database"
)

// HealthHandler reports liveness of the service's dependencies
type HealthHandler struct {
	db    *database.DB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *database.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redisClient}
}

// Check pings the database and Redis
func (h *HealthHandler) Check(c *gin.Context) {
	ctx := c.Request.Context()

	status := http.StatusOK
	result := gin.H{"status": "ok", "time": time.Now().UTC()}

	if h.db != nil {
		if err := h.db.HealthCheck(ctx); err != nil {
			status = http.StatusServiceUnavailable
			result["status"] = "degraded"
			result["database"] = err.Error()
		}
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			status = http.StatusServiceUnavailable
			result["status"] = "degraded"
			result["redis"] = err.Error()
		}
	}

	c.JSON(status, result)
}
