package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/repositories"
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	tagRepo     *repositories.TagRepository
	memberRepo  *repositories.ProjectMemberRepository
	now         func() time.Time
}

func NewProjectService(
	projectRepo *repositories.ProjectRepository,
	tagRepo *repositories.TagRepository,
	memberRepo *repositories.ProjectMemberRepository,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		tagRepo:     tagRepo,
		memberRepo:  memberRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ParseProjectID validates a path identifier. Any integer is well formed;
// ids without a row are reported as not found by the store.
func ParseProjectID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, models.ErrInvalidProjectID
	}
	return id, nil
}

// ListProjects retrieves the catalog matching the filter, newest first unless sorted otherwise
func (s *ProjectService) ListProjects(filter *models.ProjectFilter) ([]*models.ProjectDetail, error) {
	filter.Normalize()

	projects, err := s.projectRepo.List(filter)
	if err != nil {
		return nil, err
	}

	return s.buildDetails(projects)
}

// GetProject retrieves a single project with its tags and members
func (s *ProjectService) GetProject(id int64) (*models.ProjectDetail, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	return s.buildDetail(project)
}

// CreateProject stores a new submission and returns its ID.
// Submissions always start under review.
func (s *ProjectService) CreateProject(creation *models.ProjectCreation) (int64, error) {
	creation.Normalize()
	if err := creation.Validate(); err != nil {
		return 0, err
	}

	project := creation.NewProject(s.now())
	if err := s.projectRepo.Create(project, creation.Members, creation.Tags); err != nil {
		return 0, err
	}

	return project.ID, nil
}

// UpdateStatus moves a project to another status
func (s *ProjectService) UpdateStatus(id int64, status string) (*models.ProjectDetail, error) {
	target := models.ProjectStatus(status)
	if !target.IsValid() {
		return nil, models.ErrInvalidProjectStatus
	}

	if err := s.projectRepo.UpdateStatus(id, target, s.now()); err != nil {
		return nil, err
	}

	return s.GetProject(id)
}

// Ping reports whether the store answers
func (s *ProjectService) Ping() error {
	return s.projectRepo.Ping()
}
