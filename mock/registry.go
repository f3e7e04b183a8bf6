package mock

import "github.com/fwojciec/bookmirror"

var _ bookmirror.SourceRegistry = (*SourceRegistry)(nil)

// SourceRegistry is a mock implementation of bookmirror.SourceRegistry.
type SourceRegistry struct {
	GetFn           func(shape bookmirror.Shape) (*bookmirror.Source, bool)
	GetForContentFn func(content string) (bookmirror.Shape, *bookmirror.Source)
	RegisterFn      func(shape bookmirror.Shape, source *bookmirror.Source)
	ListFn          func() []bookmirror.Shape
}

func (r *SourceRegistry) Get(shape bookmirror.Shape) (*bookmirror.Source, bool) {
	return r.GetFn(shape)
}

func (r *SourceRegistry) GetForContent(content string) (bookmirror.Shape, *bookmirror.Source) {
	return r.GetForContentFn(content)
}

func (r *SourceRegistry) Register(shape bookmirror.Shape, source *bookmirror.Source) {
	if r.RegisterFn != nil {
		r.RegisterFn(shape, source)
	}
}

func (r *SourceRegistry) List() []bookmirror.Shape {
	if r.ListFn != nil {
		return r.ListFn()
	}
	return nil
}
