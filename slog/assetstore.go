package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookmirror"
)

// Ensure LoggingAssetStore implements bookmirror.AssetStore at compile time.
var _ bookmirror.AssetStore = (*LoggingAssetStore)(nil)

// LoggingAssetStore wraps an AssetStore and surfaces materialization
// failures, which the store itself only reports as advisory errors.
type LoggingAssetStore struct {
	next   bookmirror.AssetStore
	logger *slog.Logger
}

// NewLoggingAssetStore creates a new LoggingAssetStore.
func NewLoggingAssetStore(next bookmirror.AssetStore, logger *slog.Logger) *LoggingAssetStore {
	return &LoggingAssetStore{next: next, logger: logger}
}

// Materialize delegates to the wrapped store and logs the outcome.
func (s *LoggingAssetStore) Materialize(ctx context.Context, ref, pageURL string) (string, error) {
	begin := time.Now()
	local, err := s.next.Materialize(ctx, ref, pageURL)
	if err != nil {
		s.logger.Warn("asset fallback",
			"ref", ref,
			"page", pageURL,
			"err", err,
		)
		return local, err
	}
	s.logger.Debug("asset materialized",
		"ref", ref,
		"path", local,
		"duration", time.Since(begin),
	)
	return local, nil
}
