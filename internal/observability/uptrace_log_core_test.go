package observability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		values map[string]any
		want   bool
	}{
		{name: "health access log", msg: "http request", values: map[string]any{"path": "/healthz"}, want: true},
		{name: "command access log", msg: "http request", values: map[string]any{"path": "/"}, want: false},
		{name: "other message on health path", msg: "command rejected", values: map[string]any{"path": "/healthz"}, want: false},
		{name: "no path", msg: "http request", values: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldSkipUptraceLog(tt.msg, tt.values))
		})
	}
}

func TestEncodeFields_MergesBoundAndEntryFields(t *testing.T) {
	values := encodeFields(
		[]zapcore.Field{zap.String("service", "statsapi-gateway")},
		[]zapcore.Field{zap.Int("status", 502), zap.Error(errors.New("upstream returned 503: Service Unavailable"))},
	)

	assert.Equal(t, "statsapi-gateway", values["service"])
	assert.EqualValues(t, 502, values["status"])
	assert.Equal(t, "upstream returned 503: Service Unavailable", values["error"])
}

func TestBuildOTelLogAttributes_SortedByKey(t *testing.T) {
	attrs := buildOTelLogAttributes(map[string]any{
		"status":      int64(400),
		"command":     "resolve_team",
		"suggestions": []any{"boston red sox", "boston"},
	})

	require.Len(t, attrs, 3)
	assert.Equal(t, "command", attrs[0].Key)
	assert.Equal(t, "resolve_team", attrs[0].Value.AsString())
	assert.Equal(t, "status", attrs[1].Key)
	assert.Equal(t, int64(400), attrs[1].Value.AsInt64())
	assert.Equal(t, "suggestions", attrs[2].Key)
	require.Equal(t, otellog.KindSlice, attrs[2].Value.Kind())
	assert.Len(t, attrs[2].Value.AsSlice(), 2)

	assert.Nil(t, buildOTelLogAttributes(nil))
}

func TestToOTelSeverity(t *testing.T) {
	assert.Equal(t, otellog.SeverityDebug, toOTelSeverity(zapcore.DebugLevel))
	assert.Equal(t, otellog.SeverityInfo, toOTelSeverity(zapcore.InfoLevel))
	assert.Equal(t, otellog.SeverityWarn, toOTelSeverity(zapcore.WarnLevel))
	assert.Equal(t, otellog.SeverityError, toOTelSeverity(zapcore.ErrorLevel))
	assert.Equal(t, otellog.SeverityFatal, toOTelSeverity(zapcore.FatalLevel))
}

func TestToOTelLogValue(t *testing.T) {
	assert.Equal(t, "15s", toOTelLogValue(15*time.Second, 0).AsString())
	assert.Equal(t, true, toOTelLogValue(true, 0).AsBool())
	assert.Equal(t, 1.5, toOTelLogValue(1.5, 0).AsFloat64())
	assert.Equal(t, otellog.KindEmpty, toOTelLogValue(nil, 0).Kind())

	nested := toOTelLogValue(map[string]any{"season": "2024"}, 0)
	require.Equal(t, otellog.KindMap, nested.Kind())
	assert.Equal(t, "season", nested.AsMap()[0].Key)

	deep := toOTelLogValue([]int{1}, maxLogValueDepth)
	assert.Equal(t, "[1]", deep.AsString())
}

func TestUptraceLogCore_RespectsLevel(t *testing.T) {
	core := newUptraceLogCore("dev", zapcore.WarnLevel)

	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))

	withFields := core.With([]zapcore.Field{zap.String("command", "getTeamInfo")})
	require.NotSame(t, core, withFields)
	assert.NoError(t, withFields.Write(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "command failed", Time: time.Now()}, nil))
	assert.NoError(t, withFields.Sync())
}
