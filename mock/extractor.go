package mock

import "github.com/fwojciec/bookmirror"

var _ bookmirror.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bookmirror.Extractor.
type Extractor struct {
	ExtractFn func(content string) (*bookmirror.ExtractResult, error)
}

func (e *Extractor) Extract(content string) (*bookmirror.ExtractResult, error) {
	return e.ExtractFn(content)
}
