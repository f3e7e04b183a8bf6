package bookmirror

// Source bundles the shape-specific components that mirror one kind of
// book: how its TOC is parsed, how chapter content is located, and how
// that content becomes markdown.
type Source struct {
	TOC       TocResolver
	Extractor Extractor
	Converter Converter
}

// ShapeDetector identifies book source shapes from TOC content.
type ShapeDetector interface {
	// Detect analyzes TOC content and returns the identified shape.
	// Returns ShapeUnknown if the shape cannot be determined.
	Detect(content string) Shape
}

// SourceRegistry manages shape-specific sources.
type SourceRegistry interface {
	// Get returns the source registered for a shape.
	Get(shape Shape) (*Source, bool)

	// GetForContent detects the shape from TOC content and returns the
	// matching source. Falls back to the generic source if the shape is
	// unknown or unregistered.
	GetForContent(content string) (Shape, *Source)

	// Register adds a source for a shape.
	Register(shape Shape, source *Source)

	// List returns all registered shapes.
	List() []Shape
}
