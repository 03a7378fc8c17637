package repositories

import (
	"database/sql"

	"github.com/alimgiray/showcase/internal/models"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStatusSummary counts all projects and the projects in each status
func (r *StatsRepository) GetStatusSummary() (*models.StatusSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM projects
	`

	summary := &models.StatusSummary{}
	err := r.db.QueryRow(query,
		models.ProjectStatusPublished,
		models.ProjectStatusInReview,
		models.ProjectStatusInProgress,
	).Scan(&summary.Total, &summary.Published, &summary.InReview, &summary.InProgress)
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// GetCountsByCourse groups projects with a non-empty course, largest groups first
func (r *StatsRepository) GetCountsByCourse() ([]models.CourseCount, error) {
	query := `
		SELECT course, COUNT(*) AS total
		FROM projects
		WHERE course IS NOT NULL AND course <> ''
		GROUP BY course
		ORDER BY total DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.CourseCount{}
	for rows.Next() {
		var count models.CourseCount
		if err := rows.Scan(&count.Course, &count.Total); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}

// GetLatest retrieves the most recently created projects
func (r *StatsRepository) GetLatest(limit int) ([]*models.LatestProject, error) {
	query := `
		SELECT id, title, author, status, created_at
		FROM projects
		ORDER BY created_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	latest := []*models.LatestProject{}
	for rows.Next() {
		project := &models.LatestProject{}
		if err := rows.Scan(&project.ID, &project.Title, &project.Author, &project.Status, &project.CreatedAt); err != nil {
			return nil, err
		}
		latest = append(latest, project)
	}

	return latest, rows.Err()
}
