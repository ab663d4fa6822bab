package criteria

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-scorer/internal/skills"
	"github.com/jonathan/talent-scorer/internal/types"
)

const (
	titleFloor          = 0.8
	titleRelevanceRange = 0.2
)

type experienceScorer struct{}

func (experienceScorer) Criterion() types.Criterion { return types.CriterionExperience }

// Score rates years against min_years, then scales by how many titles are relevant
func (experienceScorer) Score(candidate *types.CandidateProfile, job *types.JobRequirementSpec) Result {
	req := job.Experience
	if candidate.Experience.Years == nil {
		return incomplete("no experience data")
	}

	years := *candidate.Experience.Years
	if years < 0 {
		years = 0
	}

	var base float64
	var parts []string
	switch {
	case req.MinYears <= 0 && years > 0:
		base = 100
		parts = append(parts, fmt.Sprintf("%.1f years (no minimum)", years))
	case req.MinYears <= 0:
		base = 50
		parts = append(parts, "no experience (no minimum)")
	case years >= float64(req.MinYears):
		base = 100
		parts = append(parts, fmt.Sprintf("%.1f years meets minimum %d", years, req.MinYears))
	default:
		base = years / float64(req.MinYears) * 100
		parts = append(parts, fmt.Sprintf("%.1f of %d required years", years, req.MinYears))
	}

	relevant, unusedKeywords := relevantTitles(candidate.Experience.Titles, req.RelevantTitleKeywords)
	multiplier := 1.0
	if len(req.RelevantTitleKeywords) > 0 {
		titles := candidate.Experience.Titles
		if len(titles) == 0 {
			multiplier = titleFloor
			parts = append(parts, "no job titles listed")
		} else {
			multiplier = titleFloor + titleRelevanceRange*ratio(len(relevant), len(titles))
			parts = append(parts, fmt.Sprintf("%d of %d titles relevant", len(relevant), len(titles)))
		}
	}

	r := newResult(base*multiplier, strings.Join(parts, "; "))
	r.Matched = append(r.Matched, relevant...)
	r.Missing = append(r.Missing, unusedKeywords...)
	return r
}

// relevantTitles returns titles containing any keyword and keywords found in no title
func relevantTitles(titles, keywords []string) (relevant, unused []string) {
	used := make([]bool, len(keywords))
	for _, title := range titles {
		hit := false
		for i, kw := range keywords {
			if skills.Contains(title, kw) {
				used[i] = true
				hit = true
			}
		}
		if hit {
			relevant = append(relevant, title)
		}
	}
	for i, kw := range keywords {
		if !used[i] {
			unused = append(unused, kw)
		}
	}
	return relevant, unused
}
