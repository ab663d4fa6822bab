package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status is the review state of a scored candidate
type Status string

const (
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusReview      Status = "review"
	StatusRejected    Status = "rejected"
)

// Statuses lists every status in display order
var Statuses = []Status{StatusShortlisted, StatusInterview, StatusReview, StatusRejected}

// ParseStatus parses a status name case-insensitively
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Statuses {
		if status == known {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (want one of shortlisted, interview, review, rejected)", s)
}

// Thresholds are the total-score cutoffs used to classify candidates
type Thresholds struct {
	Shortlist int `json:"shortlist" validate:"gtefield=Review,lte=100"`
	Review    int `json:"review" validate:"gte=0"`
}

// DefaultThresholds returns the stock cutoffs: 80 for shortlisted, 60 for review
func DefaultThresholds() Thresholds {
	return Thresholds{Shortlist: 80, Review: 60}
}

// StatusFor classifies a total score. Interview is never assigned automatically.
func (t Thresholds) StatusFor(total float64) Status {
	switch {
	case total >= float64(t.Shortlist):
		return StatusShortlisted
	case total >= float64(t.Review):
		return StatusReview
	default:
		return StatusRejected
	}
}

// ScoreMode distinguishes computed breakdowns from degraded-mode estimates
type ScoreMode string

const (
	ModeComputed  ScoreMode = "computed"
	ModeEstimated ScoreMode = "estimated"
)

// NoticeKind classifies a Notice attached to a breakdown
type NoticeKind string

const (
	NoticeIncompleteData  NoticeKind = "incomplete_data"
	NoticeWeightImbalance NoticeKind = "weight_imbalance"
	NoticeDegradedMode    NoticeKind = "degraded_mode"
)

// Notice is a non-fatal condition reported alongside a score
type Notice struct {
	Kind      NoticeKind `json:"kind"`
	Criterion Criterion  `json:"criterion,omitempty"`
	Message   string     `json:"message"`
}

// CriterionScore is the explained result of one criterion within a breakdown
type CriterionScore struct {
	RawScore             float64  `json:"raw_score"`
	Weight               float64  `json:"weight"`     // normalized effective weight
	RawWeight            float64  `json:"raw_weight"` // as configured on the job
	WeightedContribution float64  `json:"weighted_contribution"`
	Rationale            string   `json:"rationale"`
	Matched              []string `json:"matched"`
	Missing              []string `json:"missing"`
	Incomplete           bool     `json:"incomplete,omitempty"`
}

// ScoreBreakdown is the full, explainable result of scoring one candidate against one job
type ScoreBreakdown struct {
	ID              uuid.UUID                    `json:"id"`
	CandidateID     string                       `json:"candidate_id"`
	CandidateName   string                       `json:"candidate_name,omitempty"`
	Email           string                       `json:"email,omitempty"`
	Filename        string                       `json:"filename,omitempty"`
	JobID           string                       `json:"job_id,omitempty"`
	JobTitle        string                       `json:"job_title,omitempty"`
	Criteria        map[Criterion]CriterionScore `json:"criteria"`
	TotalScore      float64                      `json:"total_score"`
	WeightSum       float64                      `json:"weight_sum"`
	WeightsBalanced bool                         `json:"weights_balanced"`
	Status          Status                       `json:"status"`
	Mode            ScoreMode                    `json:"mode"`
	Notices         []Notice                     `json:"notices,omitempty"`
	ComputedAt      time.Time                    `json:"computed_at"`
}

// Estimated reports whether the breakdown came from the fallback estimator
func (b *ScoreBreakdown) Estimated() bool {
	return b.Mode == ModeEstimated
}

// SetStatus applies a reviewer override. Status is the only field that changes after scoring.
func (b *ScoreBreakdown) SetStatus(s Status) error {
	parsed, err := ParseStatus(string(s))
	if err != nil {
		return err
	}
	b.Status = parsed
	return nil
}

// RawScore returns the raw score for a criterion, or 0 when the breakdown has no entry for it
func (b *ScoreBreakdown) RawScore(c Criterion) float64 {
	if b.Criteria == nil {
		return 0
	}
	return b.Criteria[c].RawScore
}

// Stats summarizes a set of breakdowns for dashboards
type Stats struct {
	Total        int            `json:"total"`
	ByStatus     map[Status]int `json:"by_status"`
	Estimated    int            `json:"estimated"`
	AverageScore float64        `json:"average_score"`
	Distribution map[string]int `json:"score_distribution"`
}
