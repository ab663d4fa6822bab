package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses {
		got, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseStatus("  Interview ")
	require.NoError(t, err)
	assert.Equal(t, StatusInterview, got)

	_, err = ParseStatus("hired")
	assert.Error(t, err)
}

func TestThresholds_StatusFor(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		total float64
		want  Status
	}{
		{100, StatusShortlisted},
		{80, StatusShortlisted},
		{79.99, StatusReview},
		{60, StatusReview},
		{59.9, StatusRejected},
		{0, StatusRejected},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, th.StatusFor(tt.total), "total %.2f", tt.total)
	}
}

func TestScoreBreakdown_SetStatus(t *testing.T) {
	b := &ScoreBreakdown{Status: StatusReview}

	require.NoError(t, b.SetStatus(StatusInterview))
	assert.Equal(t, StatusInterview, b.Status)

	err := b.SetStatus("archived")
	assert.Error(t, err)
	assert.Equal(t, StatusInterview, b.Status)
}

func TestScoreBreakdown_RawScore(t *testing.T) {
	b := &ScoreBreakdown{}
	assert.Equal(t, 0.0, b.RawScore(CriterionSkills))

	b.Criteria = map[Criterion]CriterionScore{CriterionSkills: {RawScore: 72}}
	assert.Equal(t, 72.0, b.RawScore(CriterionSkills))
}

func TestCandidateProfile_NullableFieldsRoundTrip(t *testing.T) {
	input := `{"id":"c-1","education":{"level":null,"major":null},"experience":{"years":null,"titles":[]},"skills":["Go"],"bootcamps":[],"portfolio_urls":[],"location":null}`

	var profile CandidateProfile
	require.NoError(t, json.Unmarshal([]byte(input), &profile))

	assert.Nil(t, profile.Education.Level)
	assert.Nil(t, profile.Experience.Years)
	assert.Nil(t, profile.Location)
	_, ok := profile.EducationLevel()
	assert.False(t, ok)

	profile.Education.Level = StringPtr("s2")
	level, ok := profile.EducationLevel()
	assert.True(t, ok)
	assert.Equal(t, LevelS2, level)
}
