package model

// Project represents a row in the `projects` table.
type Project struct {
	ID          uint64 `json:"id"`
	ProjectName string `json:"project_name"`
	Status      string `json:"status"`
}

// PendingProject represents a row in the `pending_projects` table.  Rows are
// created with status "Pending" and leave the table when the project is
// promoted to active.
type PendingProject struct {
	ID            uint64 `json:"id"`
	ProjectName   string `json:"project_name"`
	Status        string `json:"status"`
	SubmitterName string `json:"submitter_name"`
}

// ActiveProject represents a row in the `active_projects` table.  Rows are
// created with status "Active", either directly or by promoting a pending
// project.
type ActiveProject struct {
	ID            uint64 `json:"id"`
	ProjectName   string `json:"project_name"`
	Status        string `json:"status"`
	SubmitterName string `json:"submitter_name"`
}

// ProjectMember links a user to a project (`project_members` table).
type ProjectMember struct {
	ProjectID uint64 `json:"project_id"`
	UserID    uint64 `json:"user_id"`
}
