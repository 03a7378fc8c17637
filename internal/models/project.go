package models

import (
	"errors"
	"strings"
	"time"
)

type ProjectStatus string

const (
	ProjectStatusInReview   ProjectStatus = "Em Revisão"
	ProjectStatusInProgress ProjectStatus = "Em Andamento"
	ProjectStatusPublished  ProjectStatus = "Publicado"
)

// ProjectStatuses lists every status a project may be persisted with
var ProjectStatuses = []ProjectStatus{
	ProjectStatusInReview,
	ProjectStatusInProgress,
	ProjectStatusPublished,
}

// IsValid reports whether s is one of the known statuses (exact match)
func (s ProjectStatus) IsValid() bool {
	for _, status := range ProjectStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Project struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Summary     *string       `json:"summary"`
	Description *string       `json:"description"`
	Category    *string       `json:"category"`
	Course      *string       `json:"course"`
	Shift       *string       `json:"shift"`
	Class       *string       `json:"class"`
	Semester    *string       `json:"semester"`
	Professor   *string       `json:"professor"`
	Author      *string       `json:"author"`
	AuthorEmail *string       `json:"author_email"`
	ProjectURL  *string       `json:"project_url"`
	GithubURL   *string       `json:"github_url"`
	YoutubeURL  *string       `json:"youtube_url"`
	Thumbnail   *string       `json:"thumbnail"`
	Status      ProjectStatus `json:"status"`
	Views       int64         `json:"views"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ProjectDetail is a project together with its tags and members
type ProjectDetail struct {
	Project
	Tags    []string         `json:"tags"`
	Members []*ProjectMember `json:"members"`
}

// ProjectCreation is the submission payload for a new project.
// Status is accepted for compatibility but always ignored.
type ProjectCreation struct {
	Title       string                  `json:"title"`
	Summary     string                  `json:"summary"`
	Description string                  `json:"description"`
	Category    string                  `json:"category"`
	Course      string                  `json:"course"`
	Shift       string                  `json:"shift"`
	Class       string                  `json:"class"`
	Semester    string                  `json:"semester"`
	Professor   string                  `json:"professor"`
	Author      string                  `json:"author"`
	AuthorEmail string                  `json:"author_email"`
	ProjectURL  string                  `json:"project_url"`
	GithubURL   string                  `json:"github_url"`
	YoutubeURL  string                  `json:"youtube_url"`
	Thumbnail   string                  `json:"thumbnail"`
	Status      string                  `json:"status"`
	Tags        []string                `json:"tags"`
	Members     []ProjectMemberCreation `json:"members"`
}

// StatusUpdate is the payload of a status transition
type StatusUpdate struct {
	Status string `json:"status" binding:"required,project_status"`
}

// Validate checks the creation payload after normalization
func (p *ProjectCreation) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrProjectTitleRequired
	}
	return nil
}

// Normalize trims every text field and drops blank tags and members
func (p *ProjectCreation) Normalize() {
	for _, field := range []*string{
		&p.Title, &p.Summary, &p.Description, &p.Category, &p.Course, &p.Shift,
		&p.Class, &p.Semester, &p.Professor, &p.Author, &p.AuthorEmail,
		&p.ProjectURL, &p.GithubURL, &p.YoutubeURL, &p.Thumbnail,
	} {
		*field = strings.TrimSpace(*field)
	}

	seen := make(map[string]bool, len(p.Tags))
	tags := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	p.Tags = tags

	members := make([]ProjectMemberCreation, 0, len(p.Members))
	for _, member := range p.Members {
		member.Name = strings.TrimSpace(member.Name)
		member.Role = strings.TrimSpace(member.Role)
		if member.Name == "" {
			continue
		}
		members = append(members, member)
	}
	p.Members = members
}

// NewProject builds the row for a normalized submission. New projects always
// start under review, whatever status the client sent.
func (p *ProjectCreation) NewProject(now time.Time) *Project {
	return &Project{
		Title:       p.Title,
		Summary:     optional(p.Summary),
		Description: optional(p.Description),
		Category:    optional(p.Category),
		Course:      optional(p.Course),
		Shift:       optional(p.Shift),
		Class:       optional(p.Class),
		Semester:    optional(p.Semester),
		Professor:   optional(p.Professor),
		Author:      optional(p.Author),
		AuthorEmail: optional(p.AuthorEmail),
		ProjectURL:  optional(p.ProjectURL),
		GithubURL:   optional(p.GithubURL),
		YoutubeURL:  optional(p.YoutubeURL),
		Thumbnail:   optional(p.Thumbnail),
		Status:      ProjectStatusInReview,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// Common errors
var (
	ErrProjectTitleRequired = &ValidationError{Field: "title", Message: "Title is required"}
	ErrInvalidProjectID     = &ValidationError{Field: "id", Message: "Invalid project ID"}
	ErrInvalidProjectStatus = &ValidationError{Field: "status", Message: "Invalid status"}

	ErrProjectNotFound = errors.New("project not found")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
