package model

// The four submission entities below share most of their columns.  They are
// kept as distinct types because each maps to its own table with its own
// update whitelist.  Date fields are carried as "YYYY-MM-DD" strings; the
// repositories format DATE columns on the way out.

// Charter represents a row in the `charter` table.
type Charter struct {
	ID                   uint64 `json:"id"`
	ProjectID            uint64 `json:"project_id"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	Description          string `json:"description"`
	KPIs                 string `json:"kpis"`
	Risks                string `json:"risks"`
	MitigationStrategies string `json:"mitigation_strategies"`
	TargetParticipants   string `json:"target_participants"`
	SubmitterName        string `json:"submitter_name"`
}

// ActivityForm represents a row in the `activity_form` table.
type ActivityForm struct {
	ID                   uint64 `json:"id"`
	ProjectID            uint64 `json:"project_id"`
	StartDate            string `json:"start_date"`
	EndDate              string `json:"end_date"`
	Description          string `json:"description"`
	KPIs                 string `json:"kpis"`
	Risks                string `json:"risks"`
	MitigationStrategies string `json:"mitigation_strategies"`
	TargetParticipants   string `json:"target_participants"`
	SubmitterName        string `json:"submitter_name"`
}

// ActivityClosure represents a row in the `activity_closure` table.
type ActivityClosure struct {
	ID                      uint64 `json:"id"`
	ProjectID               uint64 `json:"project_id"`
	StartDate               string `json:"start_date"`
	EndDate                 string `json:"end_date"`
	Description             string `json:"description"`
	KPIs                    string `json:"kpis"`
	Risks                   string `json:"risks"`
	MitigationStrategies    string `json:"mitigation_strategies"`
	TotalMaleParticipants   int    `json:"total_male_participants"`
	TotalFemaleParticipants int    `json:"total_female_participants"`
	SubmitterName           string `json:"submitter_name"`
}

// ProjectClosure represents a row in the `project_closure` table.
type ProjectClosure struct {
	ID                      uint64 `json:"id"`
	ProjectID               uint64 `json:"project_id"`
	StartDate               string `json:"start_date"`
	EndDate                 string `json:"end_date"`
	ProjectFeedback         string `json:"project_feedback"`
	LessonsLearned          string `json:"lessons_learned"`
	KPIs                    string `json:"kpis"`
	Risks                   string `json:"risks"`
	MitigationStrategies    string `json:"mitigation_strategies"`
	TotalMaleParticipants   int    `json:"total_male_participants"`
	TotalFemaleParticipants int    `json:"total_female_participants"`
	SubmitterName           string `json:"submitter_name"`
}
