package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerLevelsAndFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := New(zap.New(core))

	l.Info("binding_ready", String("timeframe", "M5"), Int("shift", 1))
	l.Warn("params_file_missing", String("path", "x.env"))
	l.Error("params_invalid", Err(errors.New("boom")), Float64("max_spread", -1))

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "binding_ready", entries[0].Message)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "M5", entries[0].ContextMap()["timeframe"])
	assert.Equal(t, int64(1), entries[0].ContextMap()["shift"])

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, zap.ErrorLevel, entries[2].Level)
	assert.Equal(t, "boom", entries[2].ContextMap()["error"])
	assert.Equal(t, -1.0, entries[2].ContextMap()["max_spread"])
}

func TestNewNilIsNoop(t *testing.T) {
	l := New(nil)
	assert.NotPanics(t, func() { l.Info("ignored") })
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger()
	require.NoError(t, err)
	assert.NotNil(t, l)
}
