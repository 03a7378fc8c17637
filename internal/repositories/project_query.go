package repositories

import (
	"strings"

	"github.com/alimgiray/showcase/internal/models"
)

const projectColumns = `
	p.id, p.title, p.summary, p.description, p.category, p.course, p.shift,
	p.class, p.semester, p.professor, p.author, p.author_email, p.project_url,
	p.github_url, p.youtube_url, p.thumbnail, p.status, p.views,
	p.created_at, p.updated_at`

// searchColumns are matched disjunctively by the search filter
var searchColumns = []string{"p.title", "p.summary", "p.description", "p.author", "p.professor"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildProjectListQuery turns a normalized filter into a SELECT over projects.
// Only fixed clause templates end up in the SQL text; every value is a bound argument.
func buildProjectListQuery(filter *models.ProjectFilter) (string, []interface{}) {
	var (
		conditions []string
		args       []interface{}
	)

	exact := []struct {
		column string
		value  string
	}{
		{"p.status", filter.Status},
		{"p.course", filter.Course},
		{"p.category", filter.Category},
		{"p.shift", filter.Shift},
	}
	for _, f := range exact {
		if f.value == "" {
			continue
		}
		conditions = append(conditions, f.column+" = ?")
		args = append(args, f.value)
	}

	if filter.Tag != "" {
		conditions = append(conditions, `EXISTS (
			SELECT 1 FROM project_tags pt
			JOIN tags t ON t.id = pt.tag_id
			WHERE pt.project_id = p.id AND t.name = ?
		)`)
		args = append(args, filter.Tag)
	}

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(filter.Search)) + "%"
		matches := make([]string, 0, len(searchColumns))
		for _, column := range searchColumns {
			matches = append(matches, "unicode_lower(COALESCE("+column+`, '')) LIKE ? ESCAPE '\'`)
			args = append(args, pattern)
		}
		conditions = append(conditions, "("+strings.Join(matches, " OR ")+")")
	}

	var query strings.Builder
	query.WriteString("SELECT" + projectColumns + "\n\tFROM projects p")
	if len(conditions) > 0 {
		query.WriteString("\n\tWHERE ")
		query.WriteString(strings.Join(conditions, "\n\tAND "))
	}
	query.WriteString("\n\tORDER BY ")
	query.WriteString(projectOrderClause(filter.Order()))

	return query.String(), args
}

// projectOrderClause has no secondary key: rows with equal sort keys come back in
// whatever order SQLite produces them.
func projectOrderClause(sort models.ProjectSort) string {
	switch sort {
	case models.ProjectSortOldest:
		return "p.created_at ASC"
	case models.ProjectSortPopular:
		return "p.views DESC"
	default:
		return "p.created_at DESC"
	}
}
