// Package ranking orders score breakdowns and aggregates them into dashboard statistics.
package ranking

import (
	"sort"

	"github.com/jonathan/talent-scorer/internal/types"
)

// Rank returns a new slice sorted by total score (descending). Ties go to the earlier
// computed_at, and remaining ties keep their input order. The input is not modified.
func Rank(breakdowns []types.ScoreBreakdown) []types.ScoreBreakdown {
	ranked := make([]types.ScoreBreakdown, len(breakdowns))
	copy(ranked, breakdowns)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalScore != ranked[j].TotalScore {
			return ranked[i].TotalScore > ranked[j].TotalScore
		}
		return ranked[i].ComputedAt.Before(ranked[j].ComputedAt)
	})

	return ranked
}

// FilterByStatus returns the breakdowns with the given status, preserving order
func FilterByStatus(breakdowns []types.ScoreBreakdown, status types.Status) []types.ScoreBreakdown {
	result := make([]types.ScoreBreakdown, 0, len(breakdowns))
	for _, b := range breakdowns {
		if b.Status == status {
			result = append(result, b)
		}
	}
	return result
}

// Top returns at most n breakdowns from the ranked order
func Top(breakdowns []types.ScoreBreakdown, n int) []types.ScoreBreakdown {
	ranked := Rank(breakdowns)
	if n >= 0 && n < len(ranked) {
		return ranked[:n]
	}
	return ranked
}
