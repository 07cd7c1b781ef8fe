// Package eventctx carries a logger and per-event statistics in a context.Context.
package eventctx

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

type (
	loggerKey struct{}
	statsKey  struct{}
)

// Stats collected while processing a single event.
type Stats struct {
	CallsToGithub int
}

// IncGithubCalls records a call to the Github API.
func (s *Stats) IncGithubCalls() {
	s.CallsToGithub++
}

// GetLogger returns the logger stored in the context, or a no-op logger.
func GetLogger(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}
	return logger
}

// SetLogger returns a copy of the context which carries the logger.
func SetLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// TestContext returns a context with a logger that writes to the test output.
func TestContext(t *testing.T) context.Context {
	return SetLogger(context.TODO(), zaptest.NewLogger(t))
}

// GetStats returns the stats stored in the context. When the context does not carry
// stats, a detached Stats is returned so callers never have to check for nil.
func GetStats(ctx context.Context) *Stats {
	stats, ok := ctx.Value(statsKey{}).(*Stats)
	if !ok {
		return &Stats{}
	}
	return stats
}

// SetStats returns a copy of the context which carries the stats.
func SetStats(ctx context.Context, stats *Stats) context.Context {
	return context.WithValue(ctx, statsKey{}, stats)
}
