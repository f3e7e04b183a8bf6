// Package trafilatura provides boilerplate-removing content extraction for
// book sources without a recognized structural shape.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/bookmirror"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements bookmirror.Extractor at compile time.
var _ bookmirror.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. Returns
// ENOTFOUND when no content region can be located, so callers can
// substitute a placeholder for the chapter.
func (e *Extractor) Extract(content string) (*bookmirror.ExtractResult, error) {
	if content == "" {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(content), opts)
	if err != nil {
		return nil, err
	}

	if result.ContentNode == nil {
		return nil, bookmirror.Errorf(bookmirror.ENOTFOUND, "content region not found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &bookmirror.ExtractResult{
		Title:   result.Metadata.Title,
		Content: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
