package bookmirror

import (
	"fmt"
	"regexp"
	"strings"
)

// Chapter represents one addressable unit of a book: where it comes from,
// what to call it, and which local file it is written to. Chapters are
// produced once by a TocResolver and are immutable afterwards; their order
// is both crawl order and index order.
type Chapter struct {
	// Title as it appeared in the table of contents.
	Title string

	// URL is the absolute location the chapter content is fetched from.
	URL string

	// Filename is the path-safe name of the local chapter file.
	Filename string

	// Group is an optional section label used to group index entries.
	Group string
}

// TocResolver parses table-of-contents content into an ordered chapter
// list. Implementations are pure parsers: the content has already been
// fetched and tocURL is used only to resolve relative references. Entries
// appear in document order; anchor-only links and links back to the TOC
// itself are skipped.
type TocResolver interface {
	ResolveTOC(content, tocURL string) ([]*Chapter, error)
}

var unsafeTitleChars = regexp.MustCompile(`[^a-z0-9]+`)

// ChapterFilename synthesizes a deterministic chapter filename from a
// zero-based position and a title, e.g. (0, "Trusted Setup") returns
// "01_trusted_setup.md".
func ChapterFilename(index int, title string) string {
	safe := unsafeTitleChars.ReplaceAllString(strings.ToLower(title), "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		safe = "chapter"
	}
	return fmt.Sprintf("%02d_%s.md", index+1, safe)
}
