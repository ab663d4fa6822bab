package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/talent-scorer/internal/ranking"
	"github.com/jonathan/talent-scorer/internal/scoring"
	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	b := &types.ScoreBreakdown{
		CandidateID:   "c-1",
		CandidateName: "Budi Santoso",
		JobTitle:      "Backend Developer",
		TotalScore:    89.55,
		Status:        types.StatusShortlisted,
		Mode:          types.ModeComputed,
		Criteria: map[types.Criterion]types.CriterionScore{
			types.CriterionSkills: {
				RawScore: 80, Weight: 36.36, WeightedContribution: 29.09,
				Rationale: "matched 3/3 required skills",
				Missing:   []string{"Docker", "AWS", "PostgreSQL", "Redis"},
			},
			types.CriterionLocation: {RawScore: 0, Incomplete: true, Rationale: "no location data"},
		},
		Notices: []types.Notice{{Kind: types.NoticeWeightImbalance, Message: "weights sum to 110, normalized to 100"}},
	}

	p.PrintBreakdown(b)
	output := buf.String()

	assert.Contains(t, output, "SCORE BREAKDOWN")
	assert.Contains(t, output, "Budi Santoso")
	assert.Contains(t, output, "Backend Developer")
	assert.Contains(t, output, "89.55")
	assert.Contains(t, output, "shortlisted")
	assert.Contains(t, output, "skills")
	assert.Contains(t, output, "Docker, AWS, PostgreSQL (+1 more)")
	assert.Contains(t, output, "? location")
	assert.Contains(t, output, "weights sum to 110")

	// Criteria are printed in fixed order
	assert.Less(t, strings.Index(output, "skills"), strings.Index(output, "location"))
}

func TestPrintBreakdown_Estimated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBreakdown(&types.ScoreBreakdown{CandidateID: "est-1", TotalScore: 76, Status: types.StatusReview, Mode: types.ModeEstimated})
	output := buf.String()

	assert.Contains(t, output, "est-1")
	assert.Contains(t, output, "estimated")
}

func TestPrintBreakdown_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBreakdown(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var breakdowns []types.ScoreBreakdown
	for i, score := range []float64{42, 92.5, 78.5, 65, 10, 20, 30} {
		breakdowns = append(breakdowns, types.ScoreBreakdown{
			CandidateID: string(rune('a' + i)),
			TotalScore:  score,
			Status:      types.StatusRejected,
		})
	}

	p.PrintRanking(breakdowns)
	output := buf.String()

	assert.Contains(t, output, "TOP RANKED CANDIDATES")
	assert.Contains(t, output, "Total candidates ranked: 7")
	assert.Contains(t, output, "#1  b")
	assert.Contains(t, output, "92.50")
	assert.Contains(t, output, "... and 2 more candidates")
	assert.NotContains(t, output, "10.00")
}

func TestPrintRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRanking(nil)
	assert.Empty(t, buf.String())
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	breakdowns := []types.ScoreBreakdown{
		{TotalScore: 42, Status: types.StatusRejected},
		{TotalScore: 92.5, Status: types.StatusShortlisted},
		{TotalScore: 78.5, Status: types.StatusReview},
		{TotalScore: 65, Status: types.StatusReview},
	}
	p.PrintStats(ranking.Aggregate(breakdowns), types.DefaultThresholds())
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE STATISTICS")
	assert.Contains(t, output, "69.50")
	assert.Contains(t, output, "80-100")
	assert.Contains(t, output, "interview")
}

func TestPrintProfileStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfileStats(ranking.ProfileStats{
		Candidates: 2,
		TopSkills:  []ranking.SkillCount{{Skill: "Python", Count: 2}},
		Education:  map[string]int{"S1": 1, "unknown": 1},
		Locations:  map[string]int{"Jakarta": 2},
	})
	output := buf.String()

	assert.Contains(t, output, "PROFILE ANALYTICS")
	assert.Contains(t, output, "Python")
	assert.Less(t, strings.Index(output, "S1"), strings.Index(output, "unknown"))
	assert.Contains(t, output, "Jakarta")
}

func TestPrintBatchFailures(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchFailures([]scoring.BatchResult{{Index: 0, CandidateID: "ok", Breakdown: &types.ScoreBreakdown{}}})
	assert.Contains(t, buf.String(), "ALL CANDIDATES SCORED")

	buf.Reset()
	err := errors.New("scorer panicked")
	p.PrintBatchFailures([]scoring.BatchResult{
		{Index: 0, CandidateID: "ok", Breakdown: &types.ScoreBreakdown{}},
		{Index: 1, CandidateID: "bad", Err: err, Error: err.Error()},
	})
	output := buf.String()
	assert.Contains(t, output, "Failed 1 of 2 candidates")
	assert.Contains(t, output, "#1 bad")
	assert.Contains(t, output, "scorer panicked")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
