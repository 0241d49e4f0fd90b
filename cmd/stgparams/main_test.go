package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/evdnx/stgpattern/config"
	"github.com/evdnx/stgpattern/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSingleTimeframe(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, testutils.NewMockLogger(), "5m", "", false))

	var got output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "M5", got.Timeframe)
	assert.Equal(t, config.PatternDefaults(), got.Params)
}

func TestRunAll(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, run(&buf, testutils.NewMockLogger(), "", "", true))

	var got []output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 10)
	assert.Equal(t, "M1", got[0].Timeframe)
	assert.Equal(t, "H8", got[len(got)-1].Timeframe)
}

func TestRunWithOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.env")
	require.NoError(t, os.WriteFile(path, []byte("PATTERN_MAX_SPREAD=1.5\n"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, run(&buf, testutils.NewMockLogger(), "M5", path, false))

	var got output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 1.5, got.Params.MaxSpread)
}

func TestRunUnknownTimeframe(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, run(&buf, testutils.NewMockLogger(), "M7", "", false))
}

func TestRunUnboundTimeframe(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, run(&buf, testutils.NewMockLogger(), "D1", "", false))
}

func TestRunAppliesEnvWithoutConfigFile(t *testing.T) {
	t.Setenv(config.KeyOrderCloseTime, "-5")

	var buf bytes.Buffer
	require.NoError(t, run(&buf, testutils.NewMockLogger(), "M5", "", false))

	var got output
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, -5, got.Params.OrderCloseTime)
}
