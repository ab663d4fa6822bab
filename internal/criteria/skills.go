package criteria

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-scorer/internal/skills"
	"github.com/jonathan/talent-scorer/internal/types"
)

const (
	requiredSkillsShare  = 80.0
	preferredSkillsShare = 20.0
)

type skillsScorer struct{}

func (skillsScorer) Criterion() types.Criterion { return types.CriterionSkills }

// Score gives up to 80 points for required skills and 20 for preferred ones.
// Matched and missing cover the required list only.
func (skillsScorer) Score(candidate *types.CandidateProfile, job *types.JobRequirementSpec) Result {
	required := skills.Dedupe(job.Skills.Required)
	preferred := skills.Dedupe(job.Skills.Preferred)

	if len(candidate.Skills) == 0 {
		r := incomplete("no skills data")
		r.Missing = append(r.Missing, required...)
		return r
	}

	set := skills.NewSet(candidate.Skills)
	matched, missing := skills.MatchAll(candidate.Skills, required)

	requiredTerm := requiredSkillsShare
	if len(required) > 0 {
		requiredTerm = ratio(len(matched), len(required)) * requiredSkillsShare
	}

	var preferredMatched []string
	for _, p := range preferred {
		if set.Has(p) {
			preferredMatched = append(preferredMatched, p)
		}
	}
	preferredTerm := 0.0
	if len(preferred) > 0 {
		preferredTerm = ratio(len(preferredMatched), len(preferred)) * preferredSkillsShare
	}

	r := newResult(requiredTerm+preferredTerm, skillsNotes(matched, required, preferredMatched, preferred))
	r.Matched = matched
	r.Missing = missing
	return r
}

// skillsNotes creates a brief explanation of the skill match
func skillsNotes(matched, required, preferredMatched, preferred []string) string {
	var parts []string

	if len(required) == 0 {
		parts = append(parts, "No required skills defined")
	} else {
		coverage := ratio(len(matched), len(required))
		switch {
		case coverage >= 0.7:
			parts = append(parts, fmt.Sprintf("Strong required skill match %d/%d (%s)", len(matched), len(required), strings.Join(matched, ", ")))
		case coverage > 0:
			parts = append(parts, fmt.Sprintf("Partial required skill match %d/%d (%s)", len(matched), len(required), strings.Join(matched, ", ")))
		default:
			parts = append(parts, fmt.Sprintf("No required skills matched (0/%d)", len(required)))
		}
	}

	if len(preferred) > 0 {
		if len(preferredMatched) > 0 {
			parts = append(parts, fmt.Sprintf("preferred %d/%d (%s)", len(preferredMatched), len(preferred), strings.Join(preferredMatched, ", ")))
		} else {
			parts = append(parts, fmt.Sprintf("preferred 0/%d", len(preferred)))
		}
	}

	return strings.Join(parts, "; ")
}
