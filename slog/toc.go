package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bookmirror"
)

// Ensure LoggingTocResolver implements bookmirror.TocResolver at compile time.
var _ bookmirror.TocResolver = (*LoggingTocResolver)(nil)

// LoggingTocResolver wraps a TocResolver with resolution logging.
type LoggingTocResolver struct {
	next   bookmirror.TocResolver
	logger *slog.Logger
}

// NewLoggingTocResolver creates a new LoggingTocResolver.
func NewLoggingTocResolver(next bookmirror.TocResolver, logger *slog.Logger) *LoggingTocResolver {
	return &LoggingTocResolver{next: next, logger: logger}
}

// ResolveTOC delegates to the wrapped resolver and logs the operation.
func (r *LoggingTocResolver) ResolveTOC(content, tocURL string) (chapters []*bookmirror.Chapter, err error) {
	defer func(begin time.Time) {
		r.logger.Info("toc resolved",
			"url", tocURL,
			"chapters", len(chapters),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveTOC(content, tocURL)
}
