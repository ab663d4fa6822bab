package ranking

import (
	"fmt"
	"math"

	"github.com/jonathan/talent-scorer/internal/types"
)

// Bands returns the score band labels for the given thresholds, from highest to lowest.
// With the default thresholds these are "80-100", "60-79" and "0-59".
func Bands(th types.Thresholds) []string {
	return []string{
		fmt.Sprintf("%d-100", th.Shortlist),
		fmt.Sprintf("%d-%d", th.Review, th.Shortlist-1),
		fmt.Sprintf("0-%d", th.Review-1),
	}
}

// Aggregate summarizes breakdowns using the default thresholds
func Aggregate(breakdowns []types.ScoreBreakdown) types.Stats {
	return AggregateWith(breakdowns, types.DefaultThresholds())
}

// AggregateWith summarizes breakdowns: counts per status, the average total score
// (0 for no input) and the distribution across score bands. Every status and band key is present.
func AggregateWith(breakdowns []types.ScoreBreakdown, th types.Thresholds) types.Stats {
	bands := Bands(th)
	stats := types.Stats{
		Total:        len(breakdowns),
		ByStatus:     make(map[types.Status]int, len(types.Statuses)),
		Distribution: make(map[string]int, len(bands)),
	}
	for _, s := range types.Statuses {
		stats.ByStatus[s] = 0
	}
	for _, band := range bands {
		stats.Distribution[band] = 0
	}

	sum := 0.0
	for _, b := range breakdowns {
		stats.ByStatus[b.Status]++
		if b.Estimated() {
			stats.Estimated++
		}
		sum += b.TotalScore

		switch {
		case b.TotalScore >= float64(th.Shortlist):
			stats.Distribution[bands[0]]++
		case b.TotalScore >= float64(th.Review):
			stats.Distribution[bands[1]]++
		default:
			stats.Distribution[bands[2]]++
		}
	}

	if len(breakdowns) > 0 {
		stats.AverageScore = math.Round(sum/float64(len(breakdowns))*100) / 100
	}

	return stats
}
