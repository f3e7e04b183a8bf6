package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookmirror"
)

// Ensure Detector implements bookmirror.ShapeDetector at compile time.
var _ bookmirror.ShapeDetector = (*Detector)(nil)

// Detector identifies book source shapes from TOC content by checking for
// structural markers unique to each publishing layout.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes TOC content and returns the identified shape.
// Returns ShapeUnknown if the shape cannot be determined.
func (d *Detector) Detect(content string) bookmirror.Shape {
	if looksLikeMarkdown(content) {
		return bookmirror.ShapeMarkdown
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return bookmirror.ShapeUnknown
	}

	// mdBook marker: the sidebar chapter navigation.
	if hasSelector(doc, "nav#sidebar ol.chapter") || hasSelector(doc, "li.chapter-item") {
		return bookmirror.ShapeMdBook
	}

	// Bricks builder markers: module cards or brxe- element classes.
	if hasSelector(doc, ".module-card") ||
		hasSelector(doc, "a.modules-item-title") ||
		hasSelector(doc, "[class*='brxe-']") {
		return bookmirror.ShapeBricks
	}

	return bookmirror.ShapeUnknown
}

// hasSelector returns true if the document contains at least one element
// matching the selector.
func hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

// looksLikeMarkdown returns true when content reads as a raw markdown
// document rather than an HTML page. A markdown TOC is recognizable by its
// links to other markdown files.
func looksLikeMarkdown(content string) bool {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	if strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html") || strings.Contains(lower, "<html") {
		return false
	}
	return strings.Contains(content, "](") && strings.Contains(content, ".md)")
}
