package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookmirror"
)

// Ensure MdBookToc implements bookmirror.TocResolver at compile time.
var _ bookmirror.TocResolver = (*MdBookToc)(nil)

// MdBookToc resolves chapters from an mdBook site's sidebar navigation.
type MdBookToc struct{}

// NewMdBookToc creates a new MdBookToc.
func NewMdBookToc() *MdBookToc {
	return &MdBookToc{}
}

// ResolveTOC parses the sidebar chapter list in document order. Anchor-only
// and empty links are skipped. Filenames are synthesized from position and
// title since mdBook page names carry no ordering of their own.
func (t *MdBookToc) ResolveTOC(content, tocURL string) ([]*bookmirror.Chapter, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "failed to parse HTML: %v", err)
	}

	sidebar := doc.Find("nav#sidebar").First()
	if sidebar.Length() == 0 {
		return nil, bookmirror.Errorf(bookmirror.ENOTFOUND, "sidebar navigation not found")
	}

	var chapters []*bookmirror.Chapter
	sidebar.Find("ol.chapter li.chapter-item a").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || strings.HasPrefix(href, "#") {
			return
		}

		resolved := bookmirror.ResolveURL(href, tocURL, "")
		if resolved == "" {
			return
		}

		title := strings.TrimSpace(sel.Text())
		chapters = append(chapters, &bookmirror.Chapter{
			Title:    title,
			URL:      resolved,
			Filename: bookmirror.ChapterFilename(len(chapters), title),
		})
	})

	return chapters, nil
}

// NewMdBookExtractor returns the content extractor for mdBook pages: the
// main element, with the link icons mdBook attaches to headings removed.
func NewMdBookExtractor() *Extractor {
	return NewExtractor("main", WithStrip("a.header"))
}
