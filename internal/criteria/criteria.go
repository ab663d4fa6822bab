// Package criteria implements the six per-criterion scorers used by the scoring engine.
//
// Every scorer is a pure function of a candidate profile and a job spec. Scorers never
// fail: missing candidate data yields a zero score with a rationale and the Incomplete flag.
package criteria

import (
	"math"

	"github.com/jonathan/talent-scorer/internal/types"
)

// Result is the outcome of scoring a single criterion
type Result struct {
	Score      float64
	Rationale  string
	Matched    []string
	Missing    []string
	Incomplete bool
}

// Scorer scores one criterion
type Scorer interface {
	Criterion() types.Criterion
	Score(candidate *types.CandidateProfile, job *types.JobRequirementSpec) Result
}

// registry is the closed strategy table, keyed by criterion
var registry = map[types.Criterion]Scorer{
	types.CriterionEducation:  educationScorer{},
	types.CriterionExperience: experienceScorer{},
	types.CriterionSkills:     skillsScorer{},
	types.CriterionBootcamp:   bootcampScorer{},
	types.CriterionPortfolio:  portfolioScorer{},
	types.CriterionLocation:   locationScorer{},
}

// Lookup returns the scorer registered for a criterion
func Lookup(c types.Criterion) (Scorer, bool) {
	s, ok := registry[c]
	return s, ok
}

// All returns every scorer in types.Criteria order
func All() []Scorer {
	scorers := make([]Scorer, 0, len(types.Criteria))
	for _, c := range types.Criteria {
		scorers = append(scorers, registry[c])
	}
	return scorers
}

// Score runs the scorer for one criterion. Unknown criteria score 0.
func Score(c types.Criterion, candidate *types.CandidateProfile, job *types.JobRequirementSpec) Result {
	s, ok := registry[c]
	if !ok {
		return newResult(0, "unknown criterion")
	}
	return s.Score(candidate, job)
}

// newResult returns a result with non-nil matched/missing slices
func newResult(score float64, rationale string) Result {
	return Result{
		Score:     clamp(score),
		Rationale: rationale,
		Matched:   []string{},
		Missing:   []string{},
	}
}

// incomplete returns a zero-score result flagged as missing candidate data
func incomplete(rationale string) Result {
	r := newResult(0, rationale)
	r.Incomplete = true
	return r
}

// clamp bounds a raw score to [0, 100]
func clamp(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(100, score))
}

// ratio returns n/d, or 0 when d is zero
func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
