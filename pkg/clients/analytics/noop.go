package analytics

import (
	"context"
	"log/slog"

	"github.com/navarrastar/leadpage/pkg/logger"
)

type logTracker struct {
	log *slog.Logger
}

// NewLogTracker returns a Tracker that only logs, used when no API secret is
// configured.
func NewLogTracker(log *slog.Logger) Tracker {
	return &logTracker{log: log.With(logger.Scope("clients.analytics"))}
}

func (t *logTracker) TrackEvent(_ context.Context, name string, attrs map[string]any) {
	t.log.Debug("analytics event", slog.String("event", name), slog.Any("attrs", attrs))
}

func (t *logTracker) TrackConversion(_ context.Context, action string, value float64) {
	t.log.Debug("analytics conversion", slog.String("action", action), slog.Float64("value", value))
}

func (t *logTracker) TrackPageView(_ context.Context, path string) {
	t.log.Debug("analytics page view", slog.String("path", path))
}

func (t *logTracker) Close() {}
