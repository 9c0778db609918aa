package observe

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/bestfirst/search"
)

// LogSink writes one record per step at a fixed level.
type LogSink[S comparable, C search.Cost] struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSink returns a LogSink; a nil logger means slog.Default().
func NewLogSink[S comparable, C search.Cost](l *slog.Logger, level slog.Level) *LogSink[S, C] {
	if l == nil {
		l = slog.Default()
	}
	return &LogSink[S, C]{logger: l, level: level}
}

// Observe logs step. It never fails.
func (s *LogSink[S, C]) Observe(ctx context.Context, step Step[S, C]) error {
	if !s.logger.Enabled(ctx, s.level) {
		return nil
	}
	s.logger.LogAttrs(ctx, s.level, "search step",
		slog.Int("seq", step.Seq),
		slog.Any("state", step.Node.State),
		slog.Any("cost", step.Node.Cost),
		slog.Any("priority", step.Node.Priority()),
		slog.Bool("accepted", step.Accepted),
	)
	return nil
}
