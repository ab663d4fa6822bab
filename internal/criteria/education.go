package criteria

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/talent-scorer/internal/types"
)

const (
	educationMeetsBase      = 70.0
	educationPerLevelAbove  = 15.0
	educationOneBelow       = 50.0
	educationPerLevelBelow  = 25.0
	educationMajorBonus     = 20.0
	educationAnyMajorBonus  = 10.0
	educationLowestRequired = 1
)

type educationScorer struct{}

func (educationScorer) Criterion() types.Criterion { return types.CriterionEducation }

// Score compares the candidate's level against min_level and adds a bonus for a preferred major
func (educationScorer) Score(candidate *types.CandidateProfile, job *types.JobRequirementSpec) Result {
	req := job.Education
	if candidate.Education.Level == nil || strings.TrimSpace(*candidate.Education.Level) == "" {
		r := incomplete("no education data")
		if req.MinLevel != "" {
			r.Missing = append(r.Missing, string(req.MinLevel))
		}
		return r
	}

	level, ok := candidate.EducationLevel()
	if !ok {
		return incomplete(fmt.Sprintf("unrecognized education level %q", *candidate.Education.Level))
	}

	minRank := educationLowestRequired
	if req.MinLevel != "" {
		minRank = req.MinLevel.Rank()
	}

	var matched, missing []string
	var parts []string
	levelScore := 0.0
	diff := level.Rank() - minRank
	if diff >= 0 {
		levelScore = math.Min(100, educationMeetsBase+educationPerLevelAbove*float64(diff))
		matched = append(matched, string(level))
		if req.MinLevel == "" {
			parts = append(parts, fmt.Sprintf("%s (no minimum level)", level))
		} else if diff == 0 {
			parts = append(parts, fmt.Sprintf("%s meets minimum %s", level, req.MinLevel))
		} else {
			parts = append(parts, fmt.Sprintf("%s exceeds minimum %s by %d level(s)", level, req.MinLevel, diff))
		}
	} else {
		gap := -diff
		levelScore = math.Max(0, educationOneBelow-educationPerLevelBelow*float64(gap-1))
		missing = append(missing, string(req.MinLevel))
		parts = append(parts, fmt.Sprintf("%s is %d level(s) below minimum %s", level, gap, req.MinLevel))
	}

	bonus, majorNote, majorMatched := majorBonus(candidate.Education.Major, req.PreferredMajors)
	if majorMatched != "" {
		matched = append(matched, majorMatched)
	} else if len(req.PreferredMajors) > 0 {
		missing = append(missing, req.PreferredMajors...)
	}
	if majorNote != "" {
		parts = append(parts, majorNote)
	}

	r := newResult(levelScore+bonus, strings.Join(parts, "; "))
	r.Matched = append(r.Matched, matched...)
	r.Missing = append(r.Missing, missing...)
	return r
}

// majorBonus returns the bonus, a rationale fragment and the preferred major that matched, if any
func majorBonus(major *string, preferred []string) (float64, string, string) {
	if major == nil || strings.TrimSpace(*major) == "" {
		if len(preferred) > 0 {
			return 0, "no major listed", ""
		}
		return 0, "", ""
	}

	m := strings.TrimSpace(*major)
	if len(preferred) == 0 {
		return educationAnyMajorBonus, fmt.Sprintf("major %s (no preferred majors)", m), ""
	}

	for _, p := range preferred {
		if majorMatches(m, p) {
			return educationMajorBonus, fmt.Sprintf("major %s matches preferred %s", m, p), p
		}
	}
	return 0, fmt.Sprintf("major %s not among preferred majors", m), ""
}

// majorMatches reports a case-insensitive exact or substring match in either direction
func majorMatches(major, preferred string) bool {
	a := strings.ToLower(strings.TrimSpace(major))
	b := strings.ToLower(strings.TrimSpace(preferred))
	if a == "" || b == "" {
		return false
	}
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
