package mock

import (
	"context"

	"github.com/fwojciec/bookmirror"
)

var _ bookmirror.AssetStore = (*AssetStore)(nil)

// AssetStore is a mock implementation of bookmirror.AssetStore.
type AssetStore struct {
	MaterializeFn func(ctx context.Context, ref, pageURL string) (string, error)
}

func (s *AssetStore) Materialize(ctx context.Context, ref, pageURL string) (string, error) {
	return s.MaterializeFn(ctx, ref, pageURL)
}
