package bookmirror

// ExtractResult holds the content region selected from a fetched page.
type ExtractResult struct {
	// Title is the page title, when the source exposes one.
	Title string

	// Content is the markup of the content region with non-content
	// decorations removed. HTML for HTML-shaped sources; the markdown
	// shape passes its body through unchanged.
	Content string
}

// Extractor selects the meaningful content region from fetched page
// content. Returns ENOTFOUND when the region is absent so callers can
// substitute a visible placeholder instead of dropping the chapter.
type Extractor interface {
	Extract(content string) (*ExtractResult, error)
}

// FallbackExtractor runs each extractor in order and returns the first
// successful result. When every extractor fails, the first error is
// returned.
type FallbackExtractor struct {
	Extractors []Extractor
}

// Extract runs each extractor against content until one succeeds.
func (e *FallbackExtractor) Extract(content string) (*ExtractResult, error) {
	if len(e.Extractors) == 0 {
		return nil, Errorf(EINTERNAL, "no extractors configured")
	}

	var firstErr error
	for _, ext := range e.Extractors {
		result, err := ext.Extract(content)
		if err == nil {
			return result, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
