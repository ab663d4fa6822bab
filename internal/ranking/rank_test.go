package ranking

import (
	"testing"
	"time"

	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

func breakdown(id string, score float64, at time.Time) types.ScoreBreakdown {
	return types.ScoreBreakdown{
		CandidateID: id,
		TotalScore:  score,
		Status:      types.DefaultThresholds().StatusFor(score),
		Mode:        types.ModeComputed,
		ComputedAt:  at,
	}
}

func scores(bs []types.ScoreBreakdown) []float64 {
	out := make([]float64, len(bs))
	for i, b := range bs {
		out[i] = b.TotalScore
	}
	return out
}

func TestRank_SortsDescending(t *testing.T) {
	input := []types.ScoreBreakdown{
		breakdown("a", 42.0, base),
		breakdown("b", 92.5, base),
		breakdown("c", 78.5, base),
		breakdown("d", 65.0, base),
	}

	ranked := Rank(input)

	assert.Equal(t, []float64{92.5, 78.5, 65.0, 42.0}, scores(ranked))
	// Input untouched
	assert.Equal(t, []float64{42.0, 92.5, 78.5, 65.0}, scores(input))
}

func TestRank_TiesByEarlierComputedAt(t *testing.T) {
	input := []types.ScoreBreakdown{
		breakdown("late", 70, base.Add(time.Minute)),
		breakdown("early", 70, base),
		breakdown("top", 90, base.Add(time.Hour)),
	}

	ranked := Rank(input)
	require.Len(t, ranked, 3)
	assert.Equal(t, "top", ranked[0].CandidateID)
	assert.Equal(t, "early", ranked[1].CandidateID)
	assert.Equal(t, "late", ranked[2].CandidateID)
}

func TestRank_FullTieKeepsInputOrder(t *testing.T) {
	input := []types.ScoreBreakdown{
		breakdown("first", 50, base),
		breakdown("second", 50, base),
		breakdown("third", 50, base),
	}

	ranked := Rank(input)
	assert.Equal(t, "first", ranked[0].CandidateID)
	assert.Equal(t, "second", ranked[1].CandidateID)
	assert.Equal(t, "third", ranked[2].CandidateID)
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
}

func TestTop(t *testing.T) {
	input := []types.ScoreBreakdown{
		breakdown("a", 10, base),
		breakdown("b", 30, base),
		breakdown("c", 20, base),
	}

	assert.Equal(t, []float64{30, 20}, scores(Top(input, 2)))
	assert.Len(t, Top(input, 10), 3)
	assert.Len(t, Top(input, -1), 3)
}

func TestFilterByStatus(t *testing.T) {
	input := []types.ScoreBreakdown{
		breakdown("a", 95, base),
		breakdown("b", 30, base),
		breakdown("c", 85, base),
	}

	shortlisted := FilterByStatus(input, types.StatusShortlisted)
	require.Len(t, shortlisted, 2)
	assert.Equal(t, "a", shortlisted[0].CandidateID)
	assert.Empty(t, FilterByStatus(input, types.StatusInterview))
}
