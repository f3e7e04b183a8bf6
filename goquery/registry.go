package goquery

import "github.com/fwojciec/bookmirror"

// Ensure Registry implements bookmirror.SourceRegistry at compile time.
var _ bookmirror.SourceRegistry = (*Registry)(nil)

// Registry manages shape-specific sources and auto-detects shapes from TOC
// content. It uses a ShapeDetector to identify the book's publishing layout
// and returns the matching source, falling back to the generic source when
// the shape is unknown or no source is registered for it.
type Registry struct {
	detector bookmirror.ShapeDetector
	fallback *bookmirror.Source
	sources  map[bookmirror.Shape]*bookmirror.Source
}

// NewRegistry creates a new Registry with the given detector and fallback
// source.
func NewRegistry(detector bookmirror.ShapeDetector, fallback *bookmirror.Source) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		sources:  make(map[bookmirror.Shape]*bookmirror.Source),
	}
}

// Get returns the source registered for a shape.
func (r *Registry) Get(shape bookmirror.Shape) (*bookmirror.Source, bool) {
	source, ok := r.sources[shape]
	return source, ok
}

// GetForContent detects the shape from TOC content and returns the matching
// source. Falls back to the generic source if the shape is unknown.
func (r *Registry) GetForContent(content string) (bookmirror.Shape, *bookmirror.Source) {
	shape := r.detector.Detect(content)
	if source, ok := r.sources[shape]; ok {
		return shape, source
	}
	return bookmirror.ShapeGeneric, r.fallback
}

// Register adds a source for a shape. An existing registration is replaced.
func (r *Registry) Register(shape bookmirror.Shape, source *bookmirror.Source) {
	r.sources[shape] = source
}

// List returns all registered shapes.
func (r *Registry) List() []bookmirror.Shape {
	shapes := make([]bookmirror.Shape, 0, len(r.sources))
	for shape := range r.sources {
		shapes = append(shapes, shape)
	}
	return shapes
}
