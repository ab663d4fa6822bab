package scoring

import (
	"fmt"

	"github.com/jonathan/talent-scorer/internal/fallback"
	"github.com/jonathan/talent-scorer/internal/logger"
	"github.com/jonathan/talent-scorer/internal/types"
	"go.uber.org/zap"
)

// FileMeta identifies a resume file that could not be extracted
type FileMeta struct {
	CandidateID string
	Name        string
	Email       string
	Filename    string
	SizeBytes   int64
}

// Estimate builds a degraded-mode breakdown from file metadata alone.
// The breakdown carries no criteria, is marked estimated and is always placed in review.
func (e *Engine) Estimate(meta FileMeta, job *types.JobRequirementSpec) *types.ScoreBreakdown {
	score := fallback.Estimate(meta.Filename, meta.SizeBytes)

	breakdown := &types.ScoreBreakdown{
		ID:            e.newID(),
		CandidateID:   meta.CandidateID,
		CandidateName: meta.Name,
		Email:         meta.Email,
		Filename:      meta.Filename,
		Criteria:      map[types.Criterion]types.CriterionScore{},
		TotalScore:    float64(score),
		Status:        types.StatusReview,
		Mode:          types.ModeEstimated,
		Notices: []types.Notice{{
			Kind:    types.NoticeDegradedMode,
			Message: fmt.Sprintf("structured extraction unavailable; score %d is an estimate from file metadata", score),
		}},
		ComputedAt: e.now(),
	}
	if job != nil {
		breakdown.JobID = job.ID
		breakdown.JobTitle = job.Title
		breakdown.WeightSum = job.WeightSum()
		breakdown.WeightsBalanced = breakdown.WeightSum == balancedWeightSum
	}

	jobID := ""
	if job != nil {
		jobID = job.ID
	}
	logger.WithFields(e.log, logger.ScoringFields(meta.CandidateID, jobID)...).
		Warn("degraded mode estimate", zap.String("filename", meta.Filename), zap.Int("estimate", score))

	return breakdown
}
