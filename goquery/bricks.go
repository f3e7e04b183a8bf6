package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookmirror"
)

// Ensure BricksToc implements bookmirror.TocResolver at compile time.
var _ bookmirror.TocResolver = (*BricksToc)(nil)

// BricksToc resolves chapters from the module-card listings produced by
// the Bricks page builder, preserving the module grouping for the index.
type BricksToc struct{}

// NewBricksToc creates a new BricksToc.
func NewBricksToc() *BricksToc {
	return &BricksToc{}
}

// ResolveTOC walks the module cards in document order, labelling each
// chapter with its module title. Pages without module cards fall back to a
// flat list of chapter links under a single "General" group.
func (t *BricksToc) ResolveTOC(content, tocURL string) ([]*bookmirror.Chapter, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, bookmirror.Errorf(bookmirror.EINVALID, "failed to parse HTML: %v", err)
	}

	var chapters []*bookmirror.Chapter
	appendLink := func(group string, sel *goquery.Selection) {
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
			Group:    group,
		})
	}

	cards := doc.Find(".module-card")
	if cards.Length() == 0 {
		doc.Find("a.modules-item-title").Each(func(_ int, sel *goquery.Selection) {
			appendLink("General", sel)
		})
		return chapters, nil
	}

	cards.Each(func(_ int, card *goquery.Selection) {
		group := strings.TrimSpace(card.Find(".brxe-czbqff").First().Text())
		if group == "" {
			group = strings.TrimSpace(card.Find(".brxe-hnwsjy").First().Text())
		}
		if group == "" {
			group = "Uncategorized"
		}
		card.Find("a.modules-item-title").Each(func(_ int, sel *goquery.Selection) {
			appendLink(group, sel)
		})
	})

	return chapters, nil
}

// NewBricksExtractor returns the content extractor for Bricks post pages.
func NewBricksExtractor() *Extractor {
	return NewExtractor(".brxe-post-content")
}
