package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/enroll-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level falls back to info", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Same(t, logger, slog.Default())
		})
	}
}

func TestFromContext(t *testing.T) {
	ctx := context.Background()

	// Without a logger in the context the default is returned.
	assert.Same(t, slog.Default(), FromContext(ctx))

	scoped := slog.Default().With("trace_id", "abc123")
	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	ctx := context.Background()
	fallback := slog.Default().With("component", "test")

	assert.Same(t, fallback, FromContextOrDefault(ctx, fallback))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))

	scoped := slog.Default().With("trace_id", "abc123")
	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, FromContextOrDefault(ctx, fallback))
}
