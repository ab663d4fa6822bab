package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducationLevel(t *testing.T) {
	tests := []struct {
		input  string
		want   EducationLevel
		wantOK bool
	}{
		{"S1", LevelS1, true},
		{" s2 ", LevelS2, true},
		{"d3", LevelD3, true},
		{"SMA", LevelSMA, true},
		{"bachelor", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseEducationLevel(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEducationLevel_RankOrdering(t *testing.T) {
	ordered := []EducationLevel{LevelSMA, LevelD3, LevelD4, LevelS1, LevelS2, LevelS3}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Rank(), ordered[i-1].Rank(), "%s should outrank %s", ordered[i], ordered[i-1])
	}
	assert.Equal(t, 0, EducationLevel("PhD").Rank())
}

func TestJobRequirementSpec_WeightSum(t *testing.T) {
	job := DefaultJobSpec()
	assert.Equal(t, 110.0, job.WeightSum())
	assert.Equal(t, 40.0, job.Weight(CriterionSkills))
	assert.Equal(t, 0.0, job.Weight(Criterion("salary")))
}

func TestJobRequirementSpec_Validate(t *testing.T) {
	job := DefaultJobSpec()
	require.NoError(t, job.Validate())

	t.Run("negative weight", func(t *testing.T) {
		bad := DefaultJobSpec()
		bad.Bootcamp.Weight = -1
		assert.Error(t, bad.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		bad := DefaultJobSpec()
		bad.Title = ""
		assert.Error(t, bad.Validate())
	})

	t.Run("unknown min level", func(t *testing.T) {
		bad := DefaultJobSpec()
		bad.Education.MinLevel = "Bachelor"
		assert.Error(t, bad.Validate())
	})

	t.Run("empty min level allowed", func(t *testing.T) {
		ok := DefaultJobSpec()
		ok.Education.MinLevel = ""
		assert.NoError(t, ok.Validate())
	})
}

func TestJobRequirementSpec_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(DefaultJobSpec())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, key := range []string{"title", "education", "experience", "skills", "bootcamp", "portfolio", "location"} {
		assert.Contains(t, raw, key)
	}
	edu := raw["education"].(map[string]any)
	assert.Equal(t, "S1", edu["min_level"])
}
