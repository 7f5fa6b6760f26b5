package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusUpcoming  ProjectStatus = "UPCOMING"
	ProjectStatusOngoing   ProjectStatus = "ONGOING"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
)

type Project struct {
	ID            int32         `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	HeadAccountID int32         `json:"head_account_id"`
	StartDate     time.Time     `json:"start_date"`
	EndDate       time.Time     `json:"end_date"`
	Status        ProjectStatus `json:"status"`
	ImageRef      *string       `json:"image_ref,omitempty"`
	CreatedOn     string        `json:"created_on"`
}

// EffectiveStatus derives the display status from the project dates,
// overriding the stored status wherever both are shown.
func (p *Project) EffectiveStatus(now time.Time) ProjectStatus {
	day := now.Truncate(24 * time.Hour)
	switch {
	case day.Before(p.StartDate):
		return ProjectStatusUpcoming
	case day.After(p.EndDate):
		return ProjectStatusCompleted
	default:
		return ProjectStatusOngoing
	}
}

// ProjectSummary is a search/list row annotated with the viewer's own
// membership status (nil when the viewer has no membership) and the
// project's approved-member count.
type ProjectSummary struct {
	Project
	ViewerStatus  *MembershipStatus `json:"viewer_status,omitempty"`
	ApprovedCount int32             `json:"approved_count"`
}

// ProjectDetail is the full project page payload.
type ProjectDetail struct {
	Project     Project      `json:"project"`
	Head        *Account     `json:"head,omitempty"`
	Members     []Account    `json:"members"`
	Submissions []Submission `json:"submissions"`
}
