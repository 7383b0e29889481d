package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/tnp/internal/app/models/dto"
	"github.com/yigit/tnp/internal/middleware"
)

// Pinger is satisfied by the database handle
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController reports liveness and database reachability
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Ping answers without touching dependencies
// @Summary Ping
// @Description Liveness check that touches no dependency
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "pong"
// @Router /ping [get]
func (c *HealthController) Ping(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
}

// Health checks the database with a short timeout
// @Summary Health check
// @Description Checks database reachability
// @Tags health
// @Produce json
// @Success 200 {object} dto.APIResponse "OK"
// @Failure 503 {object} dto.ErrorResponse "Database unavailable"
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		middleware.RespondError(ctx, http.StatusServiceUnavailable,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unavailable").WithSeverity(dto.ErrorSeverityCritical))
		return
	}
	middleware.RespondSuccess(ctx, http.StatusOK, gin.H{"database": "up"}, "OK")
}
