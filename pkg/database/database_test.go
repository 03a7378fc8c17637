package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"projects", "project_members", "tags", "project_tags"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}

	var foreignKeys int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&foreignKeys))
	assert.Equal(t, 1, foreignKeys)
}

func TestRunSQLScriptsIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	db, err := Open(path)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO projects (title, created_at, updated_at) VALUES ('Robot arm', datetime('now'), datetime('now'))`)
	require.NoError(t, err)

	assert.NoError(t, RunSQLScripts(db))
	require.NoError(t, db.Close())

	// reopening runs the scripts once more against the existing file
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestSchemaCascadesAndConstraints(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer db.Close()

	res, err := db.Exec(`INSERT INTO projects (title, created_at, updated_at) VALUES ('Solar car', datetime('now'), datetime('now'))`)
	require.NoError(t, err)
	projectID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO project_members (project_id, name) VALUES (?, 'Ana')`, projectID)
	require.NoError(t, err)
	res, err = db.Exec(`INSERT INTO tags (name) VALUES ('energia')`)
	require.NoError(t, err)
	tagID, err := res.LastInsertId()
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO project_tags (project_id, tag_id) VALUES (?, ?)`, projectID, tagID)
	require.NoError(t, err)

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := db.Exec(`UPDATE projects SET status = 'Arquivado' WHERE id = ?`, projectID)
		assert.Error(t, err)
	})

	t.Run("rejects duplicate tag names", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO tags (name) VALUES ('energia')`)
		assert.Error(t, err)
	})

	t.Run("rejects members of missing projects", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO project_members (project_id, name) VALUES (9999, 'Ghost')`)
		assert.Error(t, err)
	})

	t.Run("deleting a project cascades", func(t *testing.T) {
		_, err := db.Exec(`DELETE FROM projects WHERE id = ?`, projectID)
		require.NoError(t, err)

		var members, links, tags int
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM project_members`).Scan(&members))
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM project_tags`).Scan(&links))
		require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&tags))
		assert.Zero(t, members)
		assert.Zero(t, links)
		assert.Equal(t, 1, tags, "tags are shared and outlive the project")
	})
}

func TestUnicodeLowerFunction(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	defer db.Close()

	var lowered string
	require.NoError(t, db.QueryRow(`SELECT unicode_lower('ÁGUA Ação ÇÃO')`).Scan(&lowered))
	assert.Equal(t, "água ação ção", lowered)

	require.NoError(t, db.QueryRow(`SELECT LOWER('ÁGUA')`).Scan(&lowered))
	assert.Equal(t, "Água", lowered, "built-in LOWER leaves non-ASCII capitals alone")
}
