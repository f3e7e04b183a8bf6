package mock

import (
	"context"
	"io"

	"github.com/fwojciec/bookmirror"
)

var _ bookmirror.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of bookmirror.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, dir, title string, out io.Writer) error
}

func (r *Renderer) Render(ctx context.Context, dir, title string, out io.Writer) error {
	return r.RenderFn(ctx, dir, title, out)
}
