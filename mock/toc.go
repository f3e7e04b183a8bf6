package mock

import "github.com/fwojciec/bookmirror"

var _ bookmirror.TocResolver = (*TocResolver)(nil)

// TocResolver is a mock implementation of bookmirror.TocResolver.
type TocResolver struct {
	ResolveTOCFn func(content, tocURL string) ([]*bookmirror.Chapter, error)
}

func (t *TocResolver) ResolveTOC(content, tocURL string) ([]*bookmirror.Chapter, error) {
	return t.ResolveTOCFn(content, tocURL)
}
