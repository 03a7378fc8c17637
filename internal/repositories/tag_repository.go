package repositories

import (
	"database/sql"
)

type TagRepository struct {
	db *sql.DB
}

func NewTagRepository(db *sql.DB) *TagRepository {
	return &TagRepository{db: db}
}

// GetOrCreate returns the ID of the tag with exactly this name, creating it if needed
func (r *TagRepository) GetOrCreate(name string) (int64, error) {
	return r.getOrCreate(r.db, name)
}

func (r *TagRepository) getOrCreate(q querier, name string) (int64, error) {
	if _, err := q.Exec(`INSERT OR IGNORE INTO tags (name) VALUES (?)`, name); err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRow(`SELECT id FROM tags WHERE name = ?`, name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// linkProject is a no-op when the link already exists
func (r *TagRepository) linkProject(q querier, projectID, tagID int64) error {
	_, err := q.Exec(`INSERT OR IGNORE INTO project_tags (project_id, tag_id) VALUES (?, ?)`, projectID, tagID)
	return err
}

// GetNamesByProjectID retrieves the tag names of a project ordered by name
func (r *TagRepository) GetNamesByProjectID(projectID int64) ([]string, error) {
	query := `
		SELECT t.name
		FROM tags t
		JOIN project_tags pt ON pt.tag_id = t.id
		WHERE pt.project_id = ?
		ORDER BY t.name ASC
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, rows.Err()
}
