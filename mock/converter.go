package mock

import (
	"context"

	"github.com/fwojciec/bookmirror"
)

var _ bookmirror.Converter = (*Converter)(nil)

// Converter is a mock implementation of bookmirror.Converter.
type Converter struct {
	ConvertFn func(ctx context.Context, content, pageURL string) (string, error)
}

func (c *Converter) Convert(ctx context.Context, content, pageURL string) (string, error) {
	return c.ConvertFn(ctx, content, pageURL)
}
