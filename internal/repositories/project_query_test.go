package repositories

import (
	"strings"
	"testing"
	"time"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProjectListQueryBindsEveryValue(t *testing.T) {
	filter := &models.ProjectFilter{
		Status:   "Publicado",
		Course:   "Computação",
		Category: "Web",
		Shift:    "Noite",
		Tag:      "IoT",
		Search:   "x' OR 1=1 --",
		Sort:     "popular",
	}

	query, args := buildProjectListQuery(filter)

	assert.NotContains(t, query, "1=1")
	assert.NotContains(t, query, "Computação")
	assert.Contains(t, query, "ORDER BY p.views DESC")
	assert.Equal(t, strings.Count(query, "?"), len(args))
	// four exact filters, one tag, five search columns
	assert.Len(t, args, 10)
}

func TestBuildProjectListQueryWithoutFilters(t *testing.T) {
	query, args := buildProjectListQuery(&models.ProjectFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY p.created_at DESC")
	assert.Empty(t, args)
}

func ids(projects []*models.Project) []int64 {
	result := make([]int64, 0, len(projects))
	for _, p := range projects {
		result = append(result, p.ID)
	}
	return result
}

func TestProjectRepositoryListFilters(t *testing.T) {
	repos := setupRepos(t)

	robot := createProject(t, repos, models.ProjectCreation{
		Title: "Braço Robótico", Course: "Engenharia", Category: "Hardware", Shift: "Manhã",
		Author: "Carla", Professor: "Dr. Souza", Tags: []string{"Robótica", "IoT"},
	}, baseTime)
	site := createProject(t, repos, models.ProjectCreation{
		Title: "Portal do Aluno", Course: "Computação", Category: "Web", Shift: "Noite",
		Summary: "Sistema para matrícula com 100% de cobertura", Tags: []string{"Web"},
	}, baseTime.Add(time.Hour))
	app := createProject(t, repos, models.ProjectCreation{
		Title: "App de Caronas", Course: "Computação", Category: "Mobile", Shift: "Noite",
		Description: "Aplicativo para dividir CARONAS", Professor: "Dra. Lima", Tags: []string{"Mobile", "IoT"},
	}, baseTime.Add(2*time.Hour))

	require.NoError(t, repos.projects.UpdateStatus(site.ID, models.ProjectStatusPublished, baseTime.Add(3*time.Hour)))

	testCases := []struct {
		name     string
		filter   models.ProjectFilter
		expected []int64
	}{
		{"no filters newest first", models.ProjectFilter{}, []int64{app.ID, site.ID, robot.ID}},
		{"oldest first", models.ProjectFilter{Sort: "oldest"}, []int64{robot.ID, site.ID, app.ID}},
		{"unknown sort falls back to newest", models.ProjectFilter{Sort: "name"}, []int64{app.ID, site.ID, robot.ID}},
		{"status", models.ProjectFilter{Status: "Publicado"}, []int64{site.ID}},
		{"status is exact", models.ProjectFilter{Status: "publicado"}, []int64{}},
		{"course", models.ProjectFilter{Course: "Computação"}, []int64{app.ID, site.ID}},
		{"category", models.ProjectFilter{Category: "Hardware"}, []int64{robot.ID}},
		{"shift and course", models.ProjectFilter{Shift: "Noite", Course: "Computação", Sort: "oldest"}, []int64{site.ID, app.ID}},
		{"tag", models.ProjectFilter{Tag: "IoT"}, []int64{app.ID, robot.ID}},
		{"tag is exact", models.ProjectFilter{Tag: "iot"}, []int64{}},
		{"tag and course", models.ProjectFilter{Tag: "IoT", Course: "Engenharia"}, []int64{robot.ID}},
		{"search title case-insensitive", models.ProjectFilter{Search: "portal"}, []int64{site.ID}},
		{"search description", models.ProjectFilter{Search: "caronas"}, []int64{app.ID}},
		{"search author", models.ProjectFilter{Search: "CARLA"}, []int64{robot.ID}},
		{"search professor", models.ProjectFilter{Search: "dra."}, []int64{app.ID}},
		{"search summary", models.ProjectFilter{Search: "matrícula"}, []int64{site.ID}},
		{"search percent is literal", models.ProjectFilter{Search: "100%"}, []int64{site.ID}},
		{"search underscore is literal", models.ProjectFilter{Search: "_"}, []int64{}},
		{"search combined with status", models.ProjectFilter{Search: "a", Status: "Em Revisão", Sort: "oldest"}, []int64{robot.ID, app.ID}},
		{"no matches", models.ProjectFilter{Course: "Medicina", Tag: "Web"}, []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			projects, err := repos.projects.List(&tc.filter)
			require.NoError(t, err)
			assert.NotNil(t, projects)
			assert.Equal(t, tc.expected, ids(projects))
		})
	}
}

func TestProjectRepositoryListSearchAccentedCapitals(t *testing.T) {
	repos := setupRepos(t)

	water := createProject(t, repos, models.ProjectCreation{Title: "ÁGUA LIMPA"}, baseTime)
	social := createProject(t, repos, models.ProjectCreation{
		Title: "Ação Social", Summary: "Doação de ÓCULOS",
	}, baseTime.Add(time.Hour))

	testCases := []struct {
		search   string
		expected []int64
	}{
		{"ÁGUA", []int64{water.ID}},
		{"Água", []int64{water.ID}},
		{"água", []int64{water.ID}},
		{"AÇÃO", []int64{social.ID}},
		{"ação", []int64{social.ID}},
		{"óculos", []int64{social.ID}},
		{"agua", []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.search, func(t *testing.T) {
			projects, err := repos.projects.List(&models.ProjectFilter{Search: tc.search})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ids(projects))
		})
	}
}

func TestProjectRepositoryListPopular(t *testing.T) {
	repos := setupRepos(t)

	low := createProject(t, repos, models.ProjectCreation{Title: "Low"}, baseTime)
	high := createProject(t, repos, models.ProjectCreation{Title: "High"}, baseTime.Add(time.Minute))
	mid := createProject(t, repos, models.ProjectCreation{Title: "Mid"}, baseTime.Add(2*time.Minute))

	for id, views := range map[int64]int{low.ID: 10, high.ID: 50, mid.ID: 30} {
		_, err := repos.db.Exec(`UPDATE projects SET views = ? WHERE id = ?`, views, id)
		require.NoError(t, err)
	}

	projects, err := repos.projects.List(&models.ProjectFilter{Sort: "popular"})
	require.NoError(t, err)
	assert.Equal(t, []int64{high.ID, mid.ID, low.ID}, ids(projects))
}
