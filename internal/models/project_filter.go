package models

import "strings"

type ProjectSort string

const (
	ProjectSortRecent  ProjectSort = "recent"
	ProjectSortOldest  ProjectSort = "oldest"
	ProjectSortPopular ProjectSort = "popular"
)

// ProjectFilter holds the optional catalog query parameters.
// Blank values mean the filter is not applied.
type ProjectFilter struct {
	Status   string `form:"status"`
	Course   string `form:"course"`
	Category string `form:"category"`
	Shift    string `form:"shift"`
	Tag      string `form:"tag"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
}

// Normalize trims every parameter
func (f *ProjectFilter) Normalize() {
	for _, field := range []*string{&f.Status, &f.Course, &f.Category, &f.Shift, &f.Tag, &f.Search, &f.Sort} {
		*field = strings.TrimSpace(*field)
	}
}

// Order resolves the sort parameter; unknown values fall back to most recent first
func (f *ProjectFilter) Order() ProjectSort {
	switch ProjectSort(f.Sort) {
	case ProjectSortOldest:
		return ProjectSortOldest
	case ProjectSortPopular:
		return ProjectSortPopular
	default:
		return ProjectSortRecent
	}
}
