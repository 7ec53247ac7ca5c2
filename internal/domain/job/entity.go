package job

import "time"

// Posting is a single job listing. Postings are immutable once sourced;
// in this deployment they come from a fixed catalog rather than a live feed.
type Posting struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	JobType        string    `json:"job_type"`
	WorkMode       string    `json:"work_mode"`
	PostedDate     time.Time `json:"posted_date"`
	RequiredSkills []string  `json:"required_skills"`
	Link           string    `json:"link"`
}
