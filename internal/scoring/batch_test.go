package scoring

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talent-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func batchCandidates(n int) []types.CandidateProfile {
	out := make([]types.CandidateProfile, n)
	for i := range out {
		c := *exampleCandidate()
		c.ID = fmt.Sprintf("cand-%d", i)
		out[i] = c
	}
	return out
}

func TestScoreBatch_OrderPreserved(t *testing.T) {
	engine := NewEngine(Options{Workers: 3})
	candidates := batchCandidates(10)
	candidates[4].Skills = nil

	results, err := engine.ScoreBatch(context.Background(), exampleJob(), candidates)
	require.NoError(t, err)
	require.Len(t, results, 10)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, candidates[i].ID, r.CandidateID)
		require.NoError(t, r.Err)
		require.NotNil(t, r.Breakdown)
		assert.Equal(t, candidates[i].ID, r.Breakdown.CandidateID)
	}
	assert.Less(t, results[4].Breakdown.TotalScore, results[3].Breakdown.TotalScore)
}

func TestScoreBatch_MatchesSingleScore(t *testing.T) {
	engine := testEngine()
	candidates := batchCandidates(5)

	results, err := engine.ScoreBatch(context.Background(), exampleJob(), candidates)
	require.NoError(t, err)

	for i, r := range results {
		single, err := engine.Score(&candidates[i], exampleJob())
		require.NoError(t, err)
		assert.Equal(t, single.TotalScore, r.Breakdown.TotalScore)
	}
}

func TestScoreBatch_PanicIsolated(t *testing.T) {
	var calls atomic.Int32
	engine := NewEngine(Options{
		Workers: 2,
		NewID: func() uuid.UUID {
			if calls.Add(1) == 3 {
				panic("id generator exploded")
			}
			return uuid.New()
		},
	})

	results, err := engine.ScoreBatch(context.Background(), exampleJob(), batchCandidates(6))
	require.NoError(t, err)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			assert.Nil(t, r.Breakdown)
			assert.Contains(t, r.Error, "id generator exploded")
			var candErr *CandidateError
			assert.True(t, errors.As(r.Err, &candErr))
		} else {
			assert.NotNil(t, r.Breakdown)
		}
	}
	assert.Equal(t, 1, failed)
}

func TestScoreBatch_InvalidJob(t *testing.T) {
	job := exampleJob()
	job.Skills.Weight = -1

	results, err := testEngine().ScoreBatch(context.Background(), job, batchCandidates(3))
	require.Error(t, err)
	assert.Nil(t, results)

	var cfgErr *ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestScoreBatch_CancelledBeforeDispatch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := testEngine().ScoreBatch(ctx, exampleJob(), batchCandidates(4))
	require.NoError(t, err)
	require.Len(t, results, 4)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
		assert.Nil(t, r.Breakdown)
	}
}

func TestScoreBatch_CancelledMidway(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	engine := NewEngine(Options{
		Workers: 1,
		Clock: func() time.Time {
			if calls.Add(1) == 2 {
				cancel()
			}
			return fixedTime
		},
	})

	results, err := engine.ScoreBatch(ctx, exampleJob(), batchCandidates(20))
	require.NoError(t, err)
	require.Len(t, results, 20)

	scored, cancelled := 0, 0
	for _, r := range results {
		switch {
		case r.Breakdown != nil:
			scored++
		case errors.Is(r.Err, context.Canceled):
			cancelled++
		}
	}
	assert.Equal(t, 20, scored+cancelled)
	assert.GreaterOrEqual(t, scored, 2)
	assert.Greater(t, cancelled, 0)
}

func TestScoreBatch_Empty(t *testing.T) {
	results, err := testEngine().ScoreBatch(context.Background(), exampleJob(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestScoreBatch_LogsFailures(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(Options{Logger: zap.New(core)})
	_, err := engine.ScoreBatch(ctx, exampleJob(), batchCandidates(2))
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("candidate not scored").Len())
	summary := logs.FilterMessage("batch scored").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(2), summary[0].ContextMap()["failed"])
}
