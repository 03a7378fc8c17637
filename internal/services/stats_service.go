package services

import (
	"github.com/alimgiray/showcase/internal/models"
	"github.com/alimgiray/showcase/internal/repositories"
)

const latestProjectsLimit = 5

type StatsService struct {
	statsRepo *repositories.StatsRepository
}

func NewStatsService(statsRepo *repositories.StatsRepository) *StatsService {
	return &StatsService{
		statsRepo: statsRepo,
	}
}

// GetStats computes the catalog summary from the current store state
func (s *StatsService) GetStats() (*models.CatalogStats, error) {
	summary, err := s.statsRepo.GetStatusSummary()
	if err != nil {
		return nil, err
	}

	byCourse, err := s.statsRepo.GetCountsByCourse()
	if err != nil {
		return nil, err
	}

	latest, err := s.statsRepo.GetLatest(latestProjectsLimit)
	if err != nil {
		return nil, err
	}

	return &models.CatalogStats{
		Summary:        *summary,
		ByCourse:       byCourse,
		LatestProjects: latest,
	}, nil
}
