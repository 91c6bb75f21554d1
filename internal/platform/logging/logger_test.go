package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogger_InfoContextCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	ctx := WithRequestID(context.Background(), "req-123")
	logger.InfoContext(ctx, "dispatch command", "command", "getRoster")

	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "dispatch command", entry["msg"])
	require.Equal(t, "getRoster", entry["command"])
	require.Equal(t, "req-123", entry["request_id"])
}

func TestLogger_ErrorValuesAreNamed(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Warn("upstream failed", "error", errors.New("boom"))

	var entry map[string]any
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "boom", entry["error"])
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("dropped")
	logger.Debug("dropped too")

	require.Zero(t, buf.Len())
}

func TestLogger_NilReceiverFallsBackToDefault(t *testing.T) {
	var logger *Logger
	require.NotPanics(t, func() {
		logger.Info("no receiver")
		_ = logger.With("k", "v")
	})
}

func TestLogger_TeeWritesToBothCores(t *testing.T) {
	var base, mirror bytes.Buffer
	logger := NewJSONWriter(&base, LevelInfo)

	mirrorCore := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(&mirror), LevelWarn)
	teed := logger.Tee(mirrorCore)

	teed.Info("only base")
	teed.Warn("both", "command", "getSchedule")

	require.Equal(t, 2, bytes.Count(base.Bytes(), []byte("\n")))
	require.Equal(t, 1, bytes.Count(mirror.Bytes(), []byte("\n")))
	require.Contains(t, mirror.String(), `"command":"getSchedule"`)
	require.Same(t, logger, logger.Tee(nil))
}
