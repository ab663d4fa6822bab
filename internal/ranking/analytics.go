package ranking

import (
	"sort"
	"strings"

	"github.com/jonathan/talent-scorer/internal/skills"
	"github.com/jonathan/talent-scorer/internal/types"
)

// unknownBucket labels profiles without the attribute being counted
const unknownBucket = "unknown"

// SkillCount is how many candidates list a skill
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// ProfileStats describes the applicant pool independent of any job
type ProfileStats struct {
	Candidates int            `json:"candidates"`
	TopSkills  []SkillCount   `json:"top_skills"`
	Education  map[string]int `json:"education_distribution"`
	Locations  map[string]int `json:"location_distribution"`
}

// DefaultTopSkills is the number of skills reported when Analyze is called with topN <= 0
const DefaultTopSkills = 10

// Analyze computes pool analytics. Skills are counted once per candidate after normalization
// and reported with the first spelling seen. Ties in skill counts are ordered alphabetically.
func Analyze(profiles []types.CandidateProfile, topN int) ProfileStats {
	if topN <= 0 {
		topN = DefaultTopSkills
	}

	stats := ProfileStats{
		Candidates: len(profiles),
		Education:  make(map[string]int),
		Locations:  make(map[string]int),
	}

	counts := make(map[string]int)
	labels := make(map[string]string)
	for _, p := range profiles {
		for key := range skills.NewSet(p.Skills) {
			counts[key]++
		}
		for _, s := range p.Skills {
			key := skills.Normalize(s)
			if _, ok := labels[key]; !ok && key != "" {
				labels[key] = strings.TrimSpace(s)
			}
		}

		if level, ok := p.EducationLevel(); ok {
			stats.Education[string(level)]++
		} else {
			stats.Education[unknownBucket]++
		}

		if p.Location != nil && strings.TrimSpace(*p.Location) != "" {
			stats.Locations[strings.TrimSpace(*p.Location)]++
		} else {
			stats.Locations[unknownBucket]++
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > topN {
		keys = keys[:topN]
	}

	stats.TopSkills = make([]SkillCount, 0, len(keys))
	for _, k := range keys {
		stats.TopSkills = append(stats.TopSkills, SkillCount{Skill: labels[k], Count: counts[k]})
	}

	return stats
}
