package logger_test

import (
	"context"
	"directory/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		debug       bool
		info        bool
	}{
		{name: "development defaults to debug", environment: logger.DevelopmentEnvironment, debug: true, info: true},
		{name: "production defaults to info", environment: logger.ProductionEnvironment, info: true},
		{name: "level override", environment: logger.DevelopmentEnvironment, level: "warn"},
		{name: "unknown environment is development", environment: "staging", debug: true, info: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Setup(tt.environment, tt.level))

			ctx := context.Background()
			require.Equal(t, tt.debug, logger.Enabled(ctx, zapcore.DebugLevel))
			require.Equal(t, tt.info, logger.Enabled(ctx, zapcore.InfoLevel))
			require.True(t, logger.Enabled(ctx, zapcore.ErrorLevel))
		})
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	require.ErrorContains(t, logger.Setup(logger.ProductionEnvironment, "loud"), "invalid log level")
}

func TestGet_FallsBackToDefault(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	l := logger.Get(context.Background())
	require.NotNil(t, l)
	require.Same(t, l, logger.Get(context.Background()))
}

func TestWithLogger(t *testing.T) {
	custom := zap.NewExample()

	ctx := logger.WithLogger(context.Background(), custom)
	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"))
	logger.Info(ctx, "person added", zap.String("person_id", "42"))
	logger.Debug(ctx, "dropped")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "person added", entries[0].Message)
	require.Equal(t, map[string]any{"request_id": "abc", "person_id": "42"}, entries[0].ContextMap())
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "d")
	logger.Info(ctx, "i")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	levels := make([]zapcore.Level, 0, logs.Len())
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}
