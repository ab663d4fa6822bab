package criteria

import (
	"fmt"
	"strings"

	"github.com/jonathan/talent-scorer/internal/skills"
	"github.com/jonathan/talent-scorer/internal/types"
)

const unlistedLocationScore = 60.0

type locationScorer struct{}

func (locationScorer) Criterion() types.Criterion { return types.CriterionLocation }

// Score checks the candidate's location against the allowed list. "Remote" accepts a missing location.
func (locationScorer) Score(candidate *types.CandidateProfile, job *types.JobRequirementSpec) Result {
	allowed := job.Location.Allowed
	if len(allowed) == 0 {
		return newResult(100, "no location constraint")
	}

	remote := false
	for _, a := range allowed {
		if skills.EqualFold(a, types.RemoteLocation) {
			remote = true
			break
		}
	}

	if candidate.Location == nil || strings.TrimSpace(*candidate.Location) == "" {
		if remote {
			r := newResult(100, "no location stated; remote accepted")
			r.Matched = append(r.Matched, types.RemoteLocation)
			return r
		}
		r := incomplete("no location data")
		r.Missing = append(r.Missing, allowed...)
		return r
	}

	loc := strings.TrimSpace(*candidate.Location)
	for _, a := range allowed {
		if skills.EqualFold(loc, a) {
			r := newResult(100, fmt.Sprintf("%s is an allowed location", loc))
			r.Matched = append(r.Matched, a)
			return r
		}
	}

	r := newResult(unlistedLocationScore, fmt.Sprintf("%s is not in allowed locations (%s)", loc, strings.Join(allowed, ", ")))
	r.Missing = append(r.Missing, allowed...)
	return r
}
