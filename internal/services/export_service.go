package services

import (
	"fmt"
	"strings"

	"github.com/alimgiray/showcase/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Projects"

var exportHeader = []interface{}{
	"ID", "Title", "Status", "Course", "Category", "Shift", "Class", "Semester",
	"Professor", "Author", "Author email", "Tags", "Members", "Views",
	"Created at", "Updated at", "Project URL", "GitHub URL",
}

type ExportService struct {
	projectService *ProjectService
}

func NewExportService(projectService *ProjectService) *ExportService {
	return &ExportService{
		projectService: projectService,
	}
}

// ExportProjects builds a workbook with one row per project matching the filter.
// The caller owns the returned file and must close it.
func (s *ExportService) ExportProjects(filter *models.ProjectFilter) (*excelize.File, error) {
	projects, err := s.projectService.ListProjects(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := s.fillSheet(f, projects); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func (s *ExportService) fillSheet(f *excelize.File, projects []*models.ProjectDetail) error {
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(exportHeader), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(exportSheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, p := range projects {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []interface{}{
			p.ID, p.Title, string(p.Status), deref(p.Course), deref(p.Category),
			deref(p.Shift), deref(p.Class), deref(p.Semester), deref(p.Professor),
			deref(p.Author), deref(p.AuthorEmail), strings.Join(p.Tags, ", "),
			memberNames(p.Members), p.Views,
			p.CreatedAt.Format("2006-01-02 15:04:05"), p.UpdatedAt.Format("2006-01-02 15:04:05"),
			deref(p.ProjectURL), deref(p.GithubURL),
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("write row for project %d: %w", p.ID, err)
		}
	}

	return f.SetColWidth(exportSheet, "B", "B", 40)
}

func memberNames(members []*models.ProjectMember) string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
