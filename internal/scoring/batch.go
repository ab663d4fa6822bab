package scoring

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-scorer/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome for one candidate of a batch. Exactly one of Breakdown and Err is set.
type BatchResult struct {
	Index       int                   `json:"index"`
	CandidateID string                `json:"candidate_id"`
	Breakdown   *types.ScoreBreakdown `json:"breakdown,omitempty"`
	Err         error                 `json:"-"`
	Error       string                `json:"error,omitempty"`
}

func (r *BatchResult) fail(err error) {
	r.Breakdown = nil
	r.Err = err
	r.Error = err.Error()
}

// ScoreBatch scores candidates through a bounded worker pool and returns one outcome per
// candidate, in input order. A failing or panicking candidate does not affect the others.
// Candidates not yet dispatched when ctx is cancelled get ctx's error as their outcome.
// The returned error is non-nil only for an invalid job, in which case nothing is scored.
func (e *Engine) ScoreBatch(ctx context.Context, job *types.JobRequirementSpec, candidates []types.CandidateProfile) ([]BatchResult, error) {
	if err := ValidateJob(job); err != nil {
		return nil, err
	}

	results := make([]BatchResult, len(candidates))
	for i := range candidates {
		results[i] = BatchResult{Index: i, CandidateID: candidates[i].ID}
	}

	var g errgroup.Group
	g.SetLimit(e.workers)

	for i := range candidates {
		i := i
		if err := ctx.Err(); err != nil {
			for j := i; j < len(candidates); j++ {
				results[j].fail(err)
			}
			break
		}

		g.Go(func() error {
			b, err := e.scoreRecovered(&candidates[i], job)
			if err != nil {
				results[i].fail(err)
				return nil
			}
			results[i].Breakdown = b
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			e.log.Warn("candidate not scored",
				zap.Int("index", r.Index),
				zap.String("candidate_id", r.CandidateID),
				zap.Error(r.Err),
			)
		}
	}
	e.log.Info("batch scored",
		zap.String("job_id", job.ID),
		zap.Int("candidates", len(candidates)),
		zap.Int("failed", failed),
	)

	return results, nil
}

// scoreRecovered runs Score and converts a panic into a CandidateError
func (e *Engine) scoreRecovered(candidate *types.CandidateProfile, job *types.JobRequirementSpec) (b *types.ScoreBreakdown, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			b = nil
			err = &CandidateError{CandidateID: candidate.ID, Message: fmt.Sprintf("panic: %v", rec)}
		}
	}()
	return e.Score(candidate, job)
}
