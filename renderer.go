package bookmirror

import (
	"context"
	"io"
)

// Renderer combines a mirrored book directory into a single document.
// Chapter files are consumed in filename order, which by construction is
// reading order.
type Renderer interface {
	Render(ctx context.Context, dir, title string, out io.Writer) error
}
