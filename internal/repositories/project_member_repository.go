package repositories

import (
	"database/sql"

	"github.com/alimgiray/showcase/internal/models"
)

type ProjectMemberRepository struct {
	db *sql.DB
}

func NewProjectMemberRepository(db *sql.DB) *ProjectMemberRepository {
	return &ProjectMemberRepository{db: db}
}

func (r *ProjectMemberRepository) create(q querier, member *models.ProjectMember) error {
	result, err := q.Exec(
		`INSERT INTO project_members (project_id, name, role) VALUES (?, ?, ?)`,
		member.ProjectID, member.Name, member.Role,
	)
	if err != nil {
		return err
	}

	member.ID, err = result.LastInsertId()
	return err
}

// GetByProjectID retrieves all members of a project in insertion order
func (r *ProjectMemberRepository) GetByProjectID(projectID int64) ([]*models.ProjectMember, error) {
	query := `
		SELECT id, project_id, name, role
		FROM project_members WHERE project_id = ?
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*models.ProjectMember{}
	for rows.Next() {
		member := &models.ProjectMember{}
		if err := rows.Scan(&member.ID, &member.ProjectID, &member.Name, &member.Role); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
