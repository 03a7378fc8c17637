package models

import "time"

type CatalogStats struct {
	Summary        StatusSummary    `json:"summary"`
	ByCourse       []CourseCount    `json:"byCourse"`
	LatestProjects []*LatestProject `json:"latestProjects"`
}

type StatusSummary struct {
	Total      int `json:"total"`
	Published  int `json:"published"`
	InReview   int `json:"inReview"`
	InProgress int `json:"inProgress"`
}

type CourseCount struct {
	Course string `json:"course"`
	Total  int    `json:"total"`
}

// LatestProject is the short form used by the stats listing
type LatestProject struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Author    *string       `json:"author"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
