package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBreakdowns() []types.ScoreBreakdown {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return []types.ScoreBreakdown{
		{
			CandidateID:   "low",
			CandidateName: "Rina",
			Email:         "rina@example.com",
			TotalScore:    42,
			Status:        types.StatusRejected,
			Mode:          types.ModeComputed,
			Criteria: map[types.Criterion]types.CriterionScore{
				types.CriterionEducation:  {RawScore: 70},
				types.CriterionExperience: {RawScore: 33.333},
				types.CriterionSkills:     {RawScore: 26.67},
				types.CriterionBootcamp:   {RawScore: 0},
				types.CriterionPortfolio:  {RawScore: 0},
				types.CriterionLocation:   {RawScore: 60},
			},
			ComputedAt: base,
		},
		{
			CandidateID:   "est",
			CandidateName: "Estimated, Person",
			TotalScore:    76,
			Status:        types.StatusReview,
			Mode:          types.ModeEstimated,
			Criteria:      map[types.Criterion]types.CriterionScore{},
			ComputedAt:    base,
		},
		{
			CandidateID:   "top",
			CandidateName: "Budi",
			TotalScore:    92.5,
			Status:        types.StatusShortlisted,
			Mode:          types.ModeComputed,
			Criteria: map[types.Criterion]types.CriterionScore{
				types.CriterionSkills: {RawScore: 100},
			},
			ComputedAt: base,
		},
	}
}

func TestHeader(t *testing.T) {
	header := Header()
	require.Len(t, header, 8+len(types.Criteria))
	assert.Equal(t, "Rank", header[0])
	assert.Equal(t, "Total Score", header[5])
	assert.Equal(t, "education", header[8])
	assert.Equal(t, "location", header[13])
}

func TestWriteCSV(t *testing.T) {
	profiles := ProfileIndex([]types.CandidateProfile{
		{ID: "top", Name: "Budi Santoso", Email: "budi@example.com", Phone: "0812", Location: types.StringPtr("Jakarta")},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleBreakdowns(), profiles))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, Header(), rows[0])

	// Ranked by total score descending
	assert.Equal(t, []string{"1", "Budi Santoso", "budi@example.com", "0812", "Jakarta", "92.50", "shortlisted", "computed", "", "", "100.00", "", "", ""}, rows[1])
	assert.Equal(t, "2", rows[2][0])
	assert.Equal(t, "Estimated, Person", rows[2][1], "commas survive quoting")
	assert.Equal(t, "estimated", rows[2][7])
	assert.Equal(t, []string{"", "", "", "", "", ""}, rows[2][8:])

	assert.Equal(t, []string{"3", "Rina", "rina@example.com", "", "", "42.00", "rejected", "computed", "70.00", "33.33", "26.67", "0.00", "0.00", "60.00"}, rows[3])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.csv")
	require.NoError(t, WriteCSVFile(path, sampleBreakdowns(), nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Rank,Name,Email")
	assert.Contains(t, string(data), "92.50")

	err = WriteCSVFile(filepath.Join(t.TempDir(), "missing", "out.csv"), nil, nil)
	assert.Error(t, err)
}
