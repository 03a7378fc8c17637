package handlers

import (
	"errors"
	"net/http"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/services"
	"github.com/alimgiray/showcase/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ProjectHandler struct {
	projectService *services.ProjectService
	githubService  *services.GitHubService
	exportService  *services.ExportService
}

func NewProjectHandler(projectService *services.ProjectService, githubService *services.GitHubService,
	exportService *services.ExportService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		githubService:  githubService,
		exportService:  exportService,
	}
}

// ListProjects returns the catalog filtered by the query string
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	var filter models.ProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	projects, err := h.projectService.ListProjects(&filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns a single project
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := services.ParseProjectID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// CreateProject handles a new submission
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var creation models.ProjectCreation
	if err := c.ShouldBindJSON(&creation); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.projectService.CreateProject(&creation)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithField("project_id", id).Info("Project submitted")

	project, err := h.projectService.GetProject(id)
	if err != nil {
		// the submission is committed; answer with what we know
		logger.WithError(err).WithField("project_id", id).Warn("Failed to reload created project")
		c.JSON(http.StatusCreated, gin.H{"id": id})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateStatus moves a project to another status
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	id, err := services.ParseProjectID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var update models.StatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			respondError(c, models.ErrInvalidProjectStatus)
			return
		}
		respondBindError(c, err)
		return
	}

	project, err := h.projectService.UpdateStatus(id, update.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.WithFields(logrus.Fields{
		"project_id": id,
		"status":     project.Status,
	}).Info("Project status updated")

	c.JSON(http.StatusOK, project)
}

// GetRepository returns GitHub metadata for the project's linked repository
func (h *ProjectHandler) GetRepository(c *gin.Context) {
	id, err := services.ParseProjectID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	project, err := h.projectService.GetProject(id)
	if err != nil {
		respondError(c, err)
		return
	}

	summary, err := h.githubService.GetProjectRepository(c.Request.Context(), &project.Project)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ExportProjects streams the filtered catalog as a spreadsheet
func (h *ProjectHandler) ExportProjects(c *gin.Context) {
	var filter models.ProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBindError(c, err)
		return
	}

	workbook, err := h.exportService.ExportProjects(&filter)
	if err != nil {
		respondError(c, err)
		return
	}
	defer workbook.Close()

	buf, err := workbook.WriteToBuffer()
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="projects.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
