package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alimgiray/showcase/internal/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

type ProjectRepository struct {
	db         *sql.DB
	tagRepo    *TagRepository
	memberRepo *ProjectMemberRepository
	mu         sync.Mutex
}

func NewProjectRepository(db *sql.DB, tagRepo *TagRepository, memberRepo *ProjectMemberRepository) *ProjectRepository {
	return &ProjectRepository{
		db:         db,
		tagRepo:    tagRepo,
		memberRepo: memberRepo,
	}
}

// Create inserts the project, its members and its tag links in one transaction.
// On any error nothing is committed.
func (r *ProjectRepository) Create(project *models.Project, members []models.ProjectMemberCreation, tags []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO projects (
			title, summary, description, category, course, shift, class, semester,
			professor, author, author_email, project_url, github_url, youtube_url,
			thumbnail, status, views, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.Exec(query,
		project.Title, project.Summary, project.Description, project.Category,
		project.Course, project.Shift, project.Class, project.Semester,
		project.Professor, project.Author, project.AuthorEmail, project.ProjectURL,
		project.GithubURL, project.YoutubeURL, project.Thumbnail,
		project.Status, project.Views, project.CreatedAt, project.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	projectID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	for _, m := range members {
		if err := r.memberRepo.create(tx, models.NewProjectMember(projectID, m)); err != nil {
			return fmt.Errorf("insert member %q: %w", m.Name, err)
		}
	}

	for _, name := range tags {
		tagID, err := r.tagRepo.getOrCreate(tx, name)
		if err != nil {
			return fmt.Errorf("resolve tag %q: %w", name, err)
		}
		if err := r.tagRepo.linkProject(tx, projectID, tagID); err != nil {
			return fmt.Errorf("link tag %q: %w", name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	project.ID = projectID
	return nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id int64) (*models.Project, error) {
	query := `SELECT` + projectColumns + ` FROM projects p WHERE p.id = ?`

	project, err := scanProject(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}

	return project, nil
}

// List retrieves every project matching the filter, without pagination
func (r *ProjectRepository) List(filter *models.ProjectFilter) ([]*models.Project, error) {
	query, args := buildProjectListQuery(filter)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// UpdateStatus sets the status and refreshes updated_at
func (r *ProjectRepository) UpdateStatus(id int64, status models.ProjectStatus, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE projects
		SET status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := tx.Exec(query, status, now, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return models.ErrProjectNotFound
	}

	return tx.Commit()
}

// Ping checks that the store is reachable
func (r *ProjectRepository) Ping() error {
	return r.db.Ping()
}

func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Summary,
		&project.Description,
		&project.Category,
		&project.Course,
		&project.Shift,
		&project.Class,
		&project.Semester,
		&project.Professor,
		&project.Author,
		&project.AuthorEmail,
		&project.ProjectURL,
		&project.GithubURL,
		&project.YoutubeURL,
		&project.Thumbnail,
		&project.Status,
		&project.Views,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return project, nil
}
