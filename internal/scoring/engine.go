// Package scoring aggregates the six criterion scores into an explainable, normalized total.
package scoring

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talent-scorer/internal/criteria"
	"github.com/jonathan/talent-scorer/internal/logger"
	"github.com/jonathan/talent-scorer/internal/types"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// balancedWeightSum is the weight sum at which no imbalance notice is attached
const balancedWeightSum = 100.0

// ErrNilCandidate is returned when Score is called without a candidate profile
var ErrNilCandidate = errors.New("candidate profile is nil")

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Thresholds types.Thresholds
	Workers    int
	Logger     *zap.Logger
	Clock      func() time.Time
	NewID      func() uuid.UUID
}

// Engine scores candidates against job specs. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	thresholds types.Thresholds
	workers    int
	log        *zap.Logger
	now        func() time.Time
	newID      func() uuid.UUID
}

// DefaultWorkers is the batch worker pool size when Options.Workers is not set
const DefaultWorkers = 4

// NewEngine creates an Engine from opts
func NewEngine(opts Options) *Engine {
	e := &Engine{
		thresholds: opts.Thresholds,
		workers:    opts.Workers,
		log:        logger.WithFields(opts.Logger),
		now:        opts.Clock,
		newID:      opts.NewID,
	}
	if e.thresholds == (types.Thresholds{}) {
		e.thresholds = types.DefaultThresholds()
	}
	if e.workers <= 0 {
		e.workers = DefaultWorkers
	}
	if e.now == nil {
		e.now = func() time.Time { return time.Now().UTC() }
	}
	if e.newID == nil {
		e.newID = uuid.New
	}
	return e
}

// Thresholds returns the status cutoffs the engine classifies with
func (e *Engine) Thresholds() types.Thresholds {
	return e.thresholds
}

// ValidateJob checks the weight vector and the education minimum of a job spec
func ValidateJob(job *types.JobRequirementSpec) error {
	if job == nil {
		return &ConfigurationError{Message: "job spec is nil"}
	}

	for _, c := range types.Criteria {
		w := job.Weight(c)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return &ConfigurationError{Field: string(c) + ".weight", Message: "weight must be a finite number"}
		}
		if w < 0 {
			return &ConfigurationError{Field: string(c) + ".weight", Message: fmt.Sprintf("weight must be non-negative, got %g", w)}
		}
	}

	if job.WeightSum() == 0 {
		return &ConfigurationError{Field: "weights", Message: "at least one criterion weight must be positive"}
	}

	if job.Education.MinLevel != "" && job.Education.MinLevel.Rank() == 0 {
		return &ConfigurationError{Field: "education.min_level", Message: fmt.Sprintf("unknown education level %q", job.Education.MinLevel)}
	}

	return nil
}

// Score computes the full breakdown for one candidate.
// The six criteria are scored concurrently and summed in fixed order, so results are reproducible.
func (e *Engine) Score(candidate *types.CandidateProfile, job *types.JobRequirementSpec) (*types.ScoreBreakdown, error) {
	if err := ValidateJob(job); err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, ErrNilCandidate
	}

	log := logger.WithFields(e.log, logger.ScoringFields(candidate.ID, job.ID)...)

	results, err := runCriteria(candidate, job)
	if err != nil {
		return nil, &CandidateError{CandidateID: candidate.ID, Message: "criterion scorer failed", Cause: err}
	}

	weightSum := job.WeightSum()
	breakdown := &types.ScoreBreakdown{
		ID:              e.newID(),
		CandidateID:     candidate.ID,
		CandidateName:   candidate.Name,
		Email:           candidate.Email,
		Filename:        candidate.Filename,
		JobID:           job.ID,
		JobTitle:        job.Title,
		Criteria:        make(map[types.Criterion]types.CriterionScore, len(types.Criteria)),
		WeightSum:       weightSum,
		WeightsBalanced: weightSum == balancedWeightSum,
		Mode:            types.ModeComputed,
		ComputedAt:      e.now(),
	}

	total := 0.0
	for i, c := range types.Criteria {
		r := results[i]
		rawWeight := job.Weight(c)
		weight := rawWeight * 100 / weightSum
		contribution := r.Score * weight / 100
		total += contribution

		breakdown.Criteria[c] = types.CriterionScore{
			RawScore:             r.Score,
			Weight:               weight,
			RawWeight:            rawWeight,
			WeightedContribution: contribution,
			Rationale:            r.Rationale,
			Matched:              r.Matched,
			Missing:              r.Missing,
			Incomplete:           r.Incomplete,
		}

		if r.Incomplete {
			breakdown.Notices = append(breakdown.Notices, types.Notice{
				Kind:      types.NoticeIncompleteData,
				Criterion: c,
				Message:   r.Rationale,
			})
			log.Debug("incomplete candidate data", zap.String("criterion", string(c)), zap.String("rationale", r.Rationale))
		}
	}

	if !breakdown.WeightsBalanced {
		breakdown.Notices = append(breakdown.Notices, types.Notice{
			Kind:    types.NoticeWeightImbalance,
			Message: fmt.Sprintf("weights sum to %g, normalized to 100", weightSum),
		})
	}

	breakdown.TotalScore = roundScore(clampScore(total))
	breakdown.Status = e.thresholds.StatusFor(breakdown.TotalScore)

	log.Debug("candidate scored",
		zap.Float64("total_score", breakdown.TotalScore),
		zap.String("status", string(breakdown.Status)),
		zap.Float64("weight_sum", weightSum),
	)

	return breakdown, nil
}

// runCriteria runs every scorer concurrently and returns results in types.Criteria order
func runCriteria(candidate *types.CandidateProfile, job *types.JobRequirementSpec) ([]criteria.Result, error) {
	scorers := criteria.All()
	results := make([]criteria.Result, len(scorers))

	var g errgroup.Group
	for i, s := range scorers {
		i, s := i, s
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					err = fmt.Errorf("%s scorer panicked: %v", s.Criterion(), rec)
				}
			}()
			// Each goroutine owns one slot
			results[i] = s.Score(candidate, job)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// clampScore bounds a total to [0, 100]
func clampScore(total float64) float64 {
	if math.IsNaN(total) {
		return 0
	}
	return math.Max(0, math.Min(100, total))
}

// roundScore rounds to two decimals
func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}
