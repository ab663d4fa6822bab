package criteria

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-scorer/internal/skills"
	"github.com/jonathan/talent-scorer/internal/types"
)

const (
	bootcampPreferredScore = 80.0
	bootcampOtherScore     = 40.0
)

type bootcampScorer struct{}

func (bootcampScorer) Criterion() types.Criterion { return types.CriterionBootcamp }

// Score rewards bootcamps from preferred providers. Any bootcamp counts when none are preferred.
func (bootcampScorer) Score(candidate *types.CandidateProfile, job *types.JobRequirementSpec) Result {
	providers := job.Bootcamp.PreferredProviders

	var attended []string
	for _, b := range candidate.Bootcamps {
		if strings.TrimSpace(b) != "" {
			attended = append(attended, b)
		}
	}
	if len(attended) == 0 {
		r := newResult(0, "no bootcamp listed")
		r.Missing = append(r.Missing, providers...)
		return r
	}

	if len(providers) == 0 {
		r := newResult(bootcampPreferredScore, fmt.Sprintf("bootcamp %s (no preferred providers)", strings.Join(attended, ", ")))
		r.Matched = append(r.Matched, attended...)
		return r
	}

	var matched []string
	for _, p := range providers {
		for _, b := range attended {
			if providerMatches(b, p) {
				matched = append(matched, p)
				break
			}
		}
	}

	if len(matched) > 0 {
		r := newResult(bootcampPreferredScore, fmt.Sprintf("preferred bootcamp %s", strings.Join(matched, ", ")))
		r.Matched = append(r.Matched, matched...)
		return r
	}

	r := newResult(bootcampOtherScore, fmt.Sprintf("bootcamp %s not from a preferred provider", strings.Join(attended, ", ")))
	r.Missing = append(r.Missing, providers...)
	return r
}

// providerMatches reports normalized equality or the bootcamp name containing the provider name
func providerMatches(bootcamp, provider string) bool {
	if skills.Normalize(bootcamp) == skills.Normalize(provider) {
		return true
	}
	return skills.Contains(bootcamp, provider)
}
