// Package readability provides content extraction backed by the
// go-readability port of Mozilla's Readability algorithm.
package readability

import (
	"strings"

	"github.com/fwojciec/bookmirror"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements bookmirror.Extractor at compile time.
var _ bookmirror.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Returns
// ENOTFOUND when the page yields no readable content, so callers can
// substitute a placeholder for the chapter.
func (e *Extractor) Extract(content string) (*bookmirror.ExtractResult, error) {
	if content == "" {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(content), nil)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, bookmirror.Errorf(bookmirror.ENOTFOUND, "content region not found")
	}

	return &bookmirror.ExtractResult{
		Title:   article.Title,
		Content: article.Content,
	}, nil
}
