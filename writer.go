package bookmirror

// BookWriter persists the mirrored book's output tree.
type BookWriter interface {
	// WriteIndex writes the index document listing every chapter in TOC
	// order, grouped under section headings when chapters carry group
	// labels. The index is written before any chapter is fetched and does
	// not change when individual chapters later fail.
	WriteIndex(book *Book, chapters []*Chapter) error

	// WriteChapter writes one chapter file, prefixed with provenance
	// metadata recording the source URL.
	WriteChapter(chapter *Chapter, content string) error
}
