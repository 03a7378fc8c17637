package services

import (
	"fmt"

	"github.com/alimgiray/showcase/internal/models"
)

// buildDetail loads the tags and members of one project.
// It runs once per project; the catalog is small enough for the extra queries.
func (s *ProjectService) buildDetail(project *models.Project) (*models.ProjectDetail, error) {
	tags, err := s.tagRepo.GetNamesByProjectID(project.ID)
	if err != nil {
		return nil, fmt.Errorf("load tags of project %d: %w", project.ID, err)
	}

	members, err := s.memberRepo.GetByProjectID(project.ID)
	if err != nil {
		return nil, fmt.Errorf("load members of project %d: %w", project.ID, err)
	}

	return &models.ProjectDetail{
		Project: *project,
		Tags:    tags,
		Members: members,
	}, nil
}

func (s *ProjectService) buildDetails(projects []*models.Project) ([]*models.ProjectDetail, error) {
	details := make([]*models.ProjectDetail, 0, len(projects))
	for _, project := range projects {
		detail, err := s.buildDetail(project)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}
