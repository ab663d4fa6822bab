package db

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/talent-scorer/internal/types"
)

// Job is a stored job opening with its requirement spec
type Job struct {
	ID        string                   `json:"id"`
	Spec      types.JobRequirementSpec `json:"spec"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}

// CandidateRecord is a stored candidate: the latest breakdown plus the profile it was computed from
type CandidateRecord struct {
	CandidateID string                  `json:"candidate_id"`
	JobID       string                  `json:"job_id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Filename    string                  `json:"filename"`
	TotalScore  float64                 `json:"total_score"`
	Status      types.Status            `json:"status"`
	Mode        types.ScoreMode         `json:"mode"`
	Profile     *types.CandidateProfile `json:"profile,omitempty"`
	Breakdown   types.ScoreBreakdown    `json:"breakdown"`
	ComputedAt  time.Time               `json:"computed_at"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// CandidateFilter narrows ListCandidates. Zero values mean "no constraint".
type CandidateFilter struct {
	JobID    string
	Status   types.Status `validate:"omitempty,oneof=shortlisted interview review rejected"`
	MinScore *float64     `validate:"omitempty,gte=0,lte=100"`
	MaxScore *float64     `validate:"omitempty,gte=0,lte=100"`
	Search   string       // matched against name and email, case-insensitive
	Limit    int          `validate:"gte=0"`
	Offset   int          `validate:"gte=0"`
}

// Validate checks filter bounds with struct tags
func (f *CandidateFilter) Validate() error {
	validate := validator.New()
	return validate.Struct(f)
}
