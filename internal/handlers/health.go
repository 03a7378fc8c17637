package handlers

import (
	"net/http"
	"time"

	"github.com/alimgiray/showcase/internal/services"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	projectService *services.ProjectService
}

func NewHealthHandler(projectService *services.ProjectService) *HealthHandler {
	return &HealthHandler{
		projectService: projectService,
	}
}

// HealthCheck reports whether the store is reachable
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.projectService.Ping(); err != nil {
		logger.WithError(err).Error("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
