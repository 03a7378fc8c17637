package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// ErrGitHubUnavailable wraps failures talking to the GitHub API
var ErrGitHubUnavailable = errors.New("github request failed")

type GitHubService struct {
	client *github.Client
}

// NewGitHubService creates a GitHub client, authenticated when a token is given.
// Anonymous clients work for public repositories with a lower rate limit.
func NewGitHubService(token string) *GitHubService {
	if token == "" {
		return NewGitHubServiceWithClient(github.NewClient(nil))
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return NewGitHubServiceWithClient(github.NewClient(tc))
}

func NewGitHubServiceWithClient(client *github.Client) *GitHubService {
	return &GitHubService{client: client}
}

// GetProjectRepository fetches the repository linked through the project's github_url
func (s *GitHubService) GetProjectRepository(ctx context.Context, project *models.Project) (*models.RepositorySummary, error) {
	if project.GithubURL == nil || *project.GithubURL == "" {
		return nil, models.ErrRepositoryNotLinked
	}

	owner, name, err := ParseGitHubURL(*project.GithubURL)
	if err != nil {
		return nil, err
	}

	repo, _, err := s.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound {
			return nil, models.ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("%w: %s/%s: %v", ErrGitHubUnavailable, owner, name, err)
	}

	summary := &models.RepositorySummary{
		FullName:    repo.GetFullName(),
		Description: repo.GetDescription(),
		HTMLURL:     repo.GetHTMLURL(),
		Language:    repo.GetLanguage(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		OpenIssues:  repo.GetOpenIssuesCount(),
	}
	if repo.PushedAt != nil {
		pushedAt := repo.PushedAt.Time
		summary.PushedAt = &pushedAt
	}

	return summary, nil
}

// ParseGitHubURL extracts owner and repository name from links such as
// https://github.com/owner/repo, github.com/owner/repo.git or .../owner/repo/tree/main
func ParseGitHubURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", models.ErrInvalidRepositoryURL
	}

	host := strings.ToLower(u.Hostname())
	if host != "github.com" && host != "www.github.com" {
		return "", "", models.ErrInvalidRepositoryURL
	}

	var segments []string
	for _, segment := range strings.Split(u.Path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	if len(segments) < 2 {
		return "", "", models.ErrInvalidRepositoryURL
	}

	owner := segments[0]
	name := strings.TrimSuffix(segments[1], ".git")
	if name == "" {
		return "", "", models.ErrInvalidRepositoryURL
	}

	return owner, name, nil
}
