package models

import (
	"errors"
	"time"
)

// RepositorySummary is the public GitHub metadata of a project's repository
type RepositorySummary struct {
	FullName    string     `json:"full_name"`
	Description string     `json:"description"`
	HTMLURL     string     `json:"html_url"`
	Language    string     `json:"language"`
	Stars       int        `json:"stars"`
	Forks       int        `json:"forks"`
	OpenIssues  int        `json:"open_issues"`
	PushedAt    *time.Time `json:"pushed_at"`
}

var (
	ErrRepositoryNotLinked  = errors.New("project has no GitHub repository")
	ErrInvalidRepositoryURL = errors.New("github_url is not a GitHub repository URL")
	ErrRepositoryNotFound   = errors.New("GitHub repository not found")
)
