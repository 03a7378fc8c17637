package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubURL(t *testing.T) {
	testCases := []struct {
		raw   string
		owner string
		repo  string
	}{
		{"https://github.com/marina/ar", "marina", "ar"},
		{"http://www.github.com/marina/ar.git", "marina", "ar"},
		{"github.com/marina/ar/tree/main/docs", "marina", "ar"},
		{"  https://GitHub.com/marina/ar/  ", "marina", "ar"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			owner, repo, err := ParseGitHubURL(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.owner, owner)
			assert.Equal(t, tc.repo, repo)
		})
	}

	for _, raw := range []string{"https://gitlab.com/marina/ar", "https://github.com/marina", "https://github.com/", "not a url at all", "https://github.com/marina/.git"} {
		_, _, err := ParseGitHubURL(raw)
		assert.ErrorIs(t, err, models.ErrInvalidRepositoryURL, raw)
	}
}

func newTestGitHubService(t *testing.T, handler http.Handler) *GitHubService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := github.NewClient(nil)
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	return NewGitHubServiceWithClient(client)
}

func strPtr(s string) *string { return &s }

func TestGetProjectRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/marina/ar", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"full_name": "marina/ar",
			"description": "Air quality monitor",
			"html_url": "https://github.com/marina/ar",
			"language": "C++",
			"stargazers_count": 42,
			"forks_count": 7,
			"open_issues_count": 3,
			"pushed_at": "2025-06-01T12:00:00Z"
		}`)
	})
	mux.HandleFunc("/repos/marina/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})
	mux.HandleFunc("/repos/marina/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message": "boom"}`)
	})

	svc := newTestGitHubService(t, mux)
	ctx := context.Background()

	t.Run("summary", func(t *testing.T) {
		summary, err := svc.GetProjectRepository(ctx, &models.Project{GithubURL: strPtr("https://github.com/marina/ar.git")})
		require.NoError(t, err)

		assert.Equal(t, "marina/ar", summary.FullName)
		assert.Equal(t, "Air quality monitor", summary.Description)
		assert.Equal(t, "C++", summary.Language)
		assert.Equal(t, 42, summary.Stars)
		assert.Equal(t, 7, summary.Forks)
		assert.Equal(t, 3, summary.OpenIssues)
		require.NotNil(t, summary.PushedAt)
		assert.Equal(t, 2025, summary.PushedAt.Year())
	})

	t.Run("no link", func(t *testing.T) {
		_, err := svc.GetProjectRepository(ctx, &models.Project{})
		assert.ErrorIs(t, err, models.ErrRepositoryNotLinked)
	})

	t.Run("invalid link", func(t *testing.T) {
		_, err := svc.GetProjectRepository(ctx, &models.Project{GithubURL: strPtr("https://example.com/x/y")})
		assert.ErrorIs(t, err, models.ErrInvalidRepositoryURL)
	})

	t.Run("repository not found", func(t *testing.T) {
		_, err := svc.GetProjectRepository(ctx, &models.Project{GithubURL: strPtr("https://github.com/marina/missing")})
		assert.ErrorIs(t, err, models.ErrRepositoryNotFound)
	})

	t.Run("upstream failure", func(t *testing.T) {
		_, err := svc.GetProjectRepository(ctx, &models.Project{GithubURL: strPtr("https://github.com/marina/broken")})
		assert.ErrorIs(t, err, ErrGitHubUnavailable)
	})
}
