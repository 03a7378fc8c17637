package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every catalog endpoint onto the router
func RegisterRoutes(router *gin.Engine, projectHandler *ProjectHandler, statsHandler *StatsHandler, healthHandler *HealthHandler) {
	notFoundHandler := NewNotFoundHandler()

	projects := router.Group("/projects")
	{
		projects.GET("", projectHandler.ListProjects)
		projects.POST("", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.GetProject)
		projects.PATCH("/:id/status", projectHandler.UpdateStatus)
		projects.GET("/:id/repository", projectHandler.GetRepository)
	}

	router.GET("/exports/projects.xlsx", projectHandler.ExportProjects)
	router.GET("/stats", statsHandler.GetStats)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}
