package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/showcase/internal/middleware"
	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/services"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError maps domain errors to status codes. Anything unrecognized is
// logged and answered with a generic 500 so storage details never leak.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.Is(err, models.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, models.ErrRepositoryNotLinked), errors.Is(err, models.ErrRepositoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidRepositoryURL):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrGitHubUnavailable):
		logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Warn("GitHub lookup failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "GitHub is unavailable"})
	default:
		logger.WithError(err).WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// respondBindError answers malformed bodies and failed binding rules
func respondBindError(c *gin.Context, err error) {
	logger.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Debugf("Rejected request body")
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}
