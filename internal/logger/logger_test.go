package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, json := range []bool{false, true} {
		l, err := New(json, false)
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	}

	l, err := New(false, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestWithFields_NilLogger(t *testing.T) {
	l := WithFields(nil, zap.String("k", "v"))
	require.NotNil(t, l)
	l.Info("does not panic")
}

func TestWithFields_AttachesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := WithFields(zap.New(core), ScoringFields("cand-1", "")...)

	l.Info("scored")

	entries := logs.All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "cand-1", ctx[FieldCandidateID])
	assert.NotContains(t, ctx, FieldJobID)
}

func TestScoringFields(t *testing.T) {
	assert.Len(t, ScoringFields("", ""), 0)
	assert.Len(t, ScoringFields("c", "j"), 2)
}
