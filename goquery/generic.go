package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookmirror"
)

// Ensure GenericToc implements bookmirror.TocResolver at compile time.
var _ bookmirror.TocResolver = (*GenericToc)(nil)

// contentAreaSelectors locate the regions of an arbitrary page where
// chapter links are expected, in priority order.
var contentAreaSelectors = []string{
	"nav.toc a[href]",
	".toc a[href]",
	"main a[href]",
	"article a[href]",
	".content a[href]",
	"body a[href]",
}

// GenericToc extracts chapter links from the content area of an arbitrary
// TOC page. It is the fallback for book sources without a recognized shape.
type GenericToc struct{}

// NewGenericToc creates a new GenericToc.
func NewGenericToc() *GenericToc {
	return &GenericToc{}
}

// ResolveTOC collects same-host links in document order from the first
// content area selector that yields any. Duplicates, anchor-only links and
// links back to the TOC page itself are skipped. Fragments are stripped
// from resolved URLs for deduplication purposes.
func (t *GenericToc) ResolveTOC(content, tocURL string) ([]*bookmirror.Chapter, error) {
	base, err := url.Parse(tocURL)
	if err != nil {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "invalid TOC URL %q: %v", tocURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var chapters []*bookmirror.Chapter

	collect := func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" || strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
			return
		}

		resolved := bookmirror.ResolveURL(href, tocURL, "")
		if resolved == "" {
			return
		}
		u, err := url.Parse(resolved)
		if err != nil || u.Host != base.Host {
			return
		}
		u.Fragment = ""
		resolved = u.String()

		if seen[resolved] || isSelfLink(u, base) {
			return
		}
		seen[resolved] = true

		title := strings.TrimSpace(sel.Text())
		if title == "" {
			title = strings.Trim(u.Path, "/")
		}
		chapters = append(chapters, &bookmirror.Chapter{
			Title:    title,
			URL:      resolved,
			Filename: bookmirror.ChapterFilename(len(chapters), title),
		})
	}

	for _, selector := range contentAreaSelectors {
		doc.Find(selector).Each(collect)
		if len(chapters) > 0 {
			break
		}
	}

	return chapters, nil
}

// isNonHTTPLink returns true for links using non-HTTP schemes.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:", "ftp:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// isSelfLink returns true when u points back at the TOC page itself.
func isSelfLink(u, base *url.URL) bool {
	return strings.TrimSuffix(u.Path, "/") == strings.TrimSuffix(base.Path, "/")
}
