// Package goquery provides CSS-selector based implementations of
// bookmirror's TOC resolution, content extraction and shape detection for
// HTML book sources.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookmirror"
)

// Ensure Extractor implements bookmirror.Extractor at compile time.
var _ bookmirror.Extractor = (*Extractor)(nil)

// Extractor selects a page's content region with a CSS selector and strips
// non-content decorations before returning the region's HTML.
type Extractor struct {
	selector string
	strip    []string
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithStrip removes elements matching the given selectors from the content
// region before it is rendered. Used for decorations that are meaningless
// in a static document, such as self-referential heading anchors.
func WithStrip(selectors ...string) ExtractorOption {
	return func(e *Extractor) {
		e.strip = append(e.strip, selectors...)
	}
}

// NewExtractor creates an Extractor rooted at the given CSS selector.
func NewExtractor(selector string, opts ...ExtractorOption) *Extractor {
	e := &Extractor{selector: selector}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the inner HTML of the first element matching the
// configured selector. Returns ENOTFOUND when the selector matches nothing.
func (e *Extractor) Extract(content string) (*bookmirror.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "failed to parse HTML: %v", err)
	}

	region := doc.Find(e.selector).First()
	if region.Length() == 0 {
		return nil, bookmirror.Errorf(bookmirror.ENOTFOUND, "content region %q not found", e.selector)
	}

	for _, sel := range e.strip {
		region.Find(sel).Remove()
	}

	html, err := region.Html()
	if err != nil {
		return nil, err
	}

	return &bookmirror.ExtractResult{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Content: html,
	}, nil
}
