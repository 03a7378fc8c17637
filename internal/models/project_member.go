package models

// ProjectMember represents a person taking part in a project
type ProjectMember struct {
	ID        int64   `json:"id"`
	ProjectID int64   `json:"project_id"`
	Name      string  `json:"name"`
	Role      *string `json:"role"`
}

type ProjectMemberCreation struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// NewProjectMember creates the member row for an already normalized submission entry
func NewProjectMember(projectID int64, member ProjectMemberCreation) *ProjectMember {
	return &ProjectMember{
		ProjectID: projectID,
		Name:      member.Name,
		Role:      optional(member.Role),
	}
}
