package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFlagValue(t *testing.T) {
	require := require.New(t)

	var l Level
	require.NoError(l.Set("debug"))
	require.Equal(LevelDebug, l)
	require.Equal("DEBUG", l.String())
	require.NoError(l.Set("WARN"))
	require.Equal(LevelWarn, l)
	require.Error(l.Set("verbose"), "unknown level")
}

func TestFormatFlagValue(t *testing.T) {
	require := require.New(t)

	var f Format
	require.NoError(f.Set("json"))
	require.Equal(FmtJSON, f)
	require.Equal("JSON", f.String())
	require.NoError(f.Set("logfmt"))
	require.Equal(FmtLogfmt, f)
	require.Error(f.Set("xml"), "unknown format")
}

func TestEarlyLoggerIsSwapped(t *testing.T) {
	require := require.New(t)

	// Created before Initialize, like a package-level logger.
	logger := GetLogger("randgen/test")

	var buf bytes.Buffer
	require.NoError(Initialize(&buf, FmtJSON, LevelInfo))
	t.Cleanup(func() {
		_ = Initialize(nil, FmtLogfmt, LevelError)
	})

	logger.Debug("dropped", "k", 1)
	logger.Info("kept", "bound", 6)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(lines, 1, "debug message should be filtered")

	var entry map[string]interface{}
	require.NoError(json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal("kept", entry["msg"])
	require.Equal("randgen/test", entry["module"])
	require.EqualValues(6, entry["bound"])
	require.Equal(LevelInfo, GetLevel())
}

func TestUninitializedIsSilent(t *testing.T) {
	require.NoError(t, Initialize(nil, FmtLogfmt, LevelDebug))
	// Nothing to assert beyond not panicking on a discarded message.
	GetLogger("silent").With("a", 1).Warn("discarded")
}
